package report

import (
	"strconv"

	"github.com/nicontent/nicontent/maintain"
	"github.com/nicontent/nicontent/registry"
)

const dryRunTag = "[DRY-RUN] "

// Actions renders moves or renames as a numbered source/destination table.
func Actions(verb string, actions []maintain.Action, dryRun bool) string {
	title := verb
	if dryRun {
		title = dryRunTag + verb
	}
	rows := make([][]string, 0, len(actions))
	for i, a := range actions {
		rows = append(rows, []string{strconv.Itoa(i + 1), a.Source, a.Destination})
	}
	return Table(title, []string{"#", "Source", "Destination"}, rows, []Align{AlignRight})
}

// Changes renders registry rewrites, tagging each row DRY-RUN or WRITE.
func Changes(field string, changes []registry.Change) string {
	rows := make([][]string, 0, len(changes))
	for _, c := range changes {
		mode := "DRY-RUN"
		if c.Written {
			mode = "WRITE"
		}
		rows = append(rows, []string{mode, c.Name, strconv.Quote(c.Old), strconv.Quote(c.New)})
	}
	return Table(field, []string{"Mode", "Product", "Old", "New"}, rows, nil)
}
