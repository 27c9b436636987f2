package maintain

import (
	"path/filepath"

	"github.com/nicontent/nicontent/content"
)

// PlanMove returns one action per entry of lib whose raw name ends with
// the library suffix, targeting backup/<name>, in listing order.
func PlanMove(lib *content.Library, backup string) []Action {
	var plan []Action
	for _, i := range lib.WithLibrarySuffix() {
		e := lib.Entry(i)
		plan = append(plan, Action{
			Source:      e.Path,
			Destination: filepath.Join(backup, e.Name),
		})
	}
	return plan
}

// Move relocates every "X Library" entry of lib into backup. The backup
// root is created first. It returns the actions that were performed, or
// with DryRun the planned ones. The first failed move aborts the command.
func Move(fsys FS, lib *content.Library, backup string, opts Options) ([]Action, error) {
	log := opts.logger()
	plan := PlanMove(lib, backup)

	if opts.DryRun {
		for _, a := range plan {
			log.Debug("would move", "src", a.Source, "dst", a.Destination)
		}
		return plan, nil
	}
	if len(plan) == 0 {
		log.Info("nothing to move", "root", lib.Root)
		return nil, nil
	}

	if err := fsys.MkdirAll(backup); err != nil {
		return nil, err
	}

	done := make([]Action, 0, len(plan))
	for _, a := range plan {
		if err := fsys.Move(a.Source, a.Destination); err != nil {
			return done, err
		}
		log.Info("moved", "src", a.Source, "dst", a.Destination)
		done = append(done, a)
	}
	return done, nil
}
