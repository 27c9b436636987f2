package maintain

import (
	"path/filepath"

	"github.com/nicontent/nicontent/content"
)

// Rename appends the library suffix to each directory in paths. Paths
// that do not exist, are not directories or already carry the suffix are
// skipped. It returns the renames that were performed, or with DryRun the
// planned ones. The first failed rename aborts the command.
func Rename(fsys FS, paths []string, opts Options) ([]Action, error) {
	log := opts.logger()

	var done []Action
	for _, p := range paths {
		p = filepath.Clean(p)
		if !fsys.Exists(p) {
			log.Debug("skip rename", "path", p, "reason", "missing")
			continue
		}
		if !fsys.IsDir(p) {
			log.Debug("skip rename", "path", p, "reason", "not a directory")
			continue
		}
		name := filepath.Base(p)
		if content.HasLibrarySuffix(name) {
			log.Debug("skip rename", "path", p, "reason", "already suffixed")
			continue
		}

		newName := name + content.LibrarySuffix
		a := Action{Source: p, Destination: filepath.Join(filepath.Dir(p), newName)}
		if opts.DryRun {
			log.Debug("would rename", "src", a.Source, "dst", a.Destination)
			done = append(done, a)
			continue
		}

		if err := fsys.Rename(p, newName); err != nil {
			return done, err
		}
		log.Info("renamed", "src", a.Source, "dst", a.Destination)
		done = append(done, a)
	}
	return done, nil
}
