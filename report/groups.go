package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/taigrr/colorhash"

	"github.com/nicontent/nicontent/content"
)

var groupPalette = []text.Colors{
	{text.FgHiBlue},
	{text.FgHiGreen},
	{text.FgHiYellow},
	{text.FgHiMagenta},
	{text.FgHiCyan},
	{text.FgHiRed},
	{text.FgBlue},
	{text.FgGreen},
	{text.FgMagenta},
	{text.FgCyan},
}

// GroupOptions controls Groups.
type GroupOptions struct {
	// All includes groups with a single member.
	All bool
	// Color paints each canonical key with a colour derived from the key.
	Color bool
}

// Groups renders one row per group member with the names it is related
// to, followed by a one-line summary.
func Groups(lib *content.Library, groups []content.Group, opts GroupOptions) string {
	var rows [][]string
	paired := 0
	for _, g := range groups {
		if len(g.Members) > 1 {
			paired++
		} else if !opts.All {
			continue
		}
		key := g.Key
		if opts.Color {
			key = groupColor(g.Key).Sprint(g.Key)
		}
		for n, i := range g.Members {
			e := lib.Entry(i)
			first := ""
			if n == 0 {
				first = key
			}
			rows = append(rows, []string{first, e.Name, e.Path, strings.Join(lib.RelatedNames(i), ", ")})
		}
	}

	out := Table(lib.Root, []string{"Key", "Entry", "Path", "Related"}, rows, nil)
	return out + "\n" + fmt.Sprintf("%d entries, %d groups, %d paired", lib.Len(), len(groups), paired)
}

func groupColor(key string) text.Colors {
	h := colorhash.HashString(key)
	if h < 0 {
		h = -h
	}
	return groupPalette[h%len(groupPalette)]
}
