package registry

import (
	"log/slog"
	"strings"

	"github.com/nicontent/nicontent/content"
	"github.com/nicontent/nicontent/logging"
)

// Change is one rewritten (or, in dry-run mode, rewritable) record.
type Change struct {
	Name    string
	Old     string
	New     string
	Written bool
}

// Rewriter points matching records of a store at the "X Library" variant
// of their folder.
type Rewriter struct {
	Store    Store
	BasePath string
	Field    string
	DryRun   bool
	Logger   *slog.Logger
}

// Normalize strips every trailing separator from a folder value.
func Normalize(value string) string {
	return strings.TrimRight(value, Separator)
}

// Rewrite returns the value written for a normalized folder.
func Rewrite(normalized string) string {
	return normalized + content.LibrarySuffix + Separator
}

// Run rewrites every record whose normalized value is one of targets.
// Targets are normalized the same way. Records without the field are
// skipped. It returns the changes in enumeration order; the first failed
// write aborts the run and the changes made so far are returned with the
// error.
func (r *Rewriter) Run(targets []string) ([]Change, error) {
	log := r.Logger
	if log == nil {
		log = logging.NewNop()
	}

	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		set[Normalize(t)] = struct{}{}
	}

	var changes []Change
	for name, err := range r.Store.Names(r.BasePath) {
		if err != nil {
			return changes, err
		}
		original, ok, err := r.Store.ReadField(r.BasePath, name, r.Field)
		if err != nil {
			return changes, err
		}
		if !ok {
			log.Debug("skip record", "name", name, "reason", "no "+r.Field)
			continue
		}

		normalized := Normalize(original)
		if _, match := set[normalized]; !match {
			continue
		}

		c := Change{Name: name, Old: original, New: Rewrite(normalized)}
		if r.DryRun {
			changes = append(changes, c)
			continue
		}
		if err := r.Store.WriteField(r.BasePath, name, r.Field, c.New); err != nil {
			return changes, err
		}
		c.Written = true
		log.Info("wrote "+r.Field, "name", name, "old", c.Old, "new", c.New)
		changes = append(changes, c)
	}
	return changes, nil
}
