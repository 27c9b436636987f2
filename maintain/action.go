package maintain

import (
	"log/slog"

	"github.com/nicontent/nicontent/logging"
)

// Action is one relocation or rename, performed or planned.
type Action struct {
	Source      string
	Destination string
}

// Options controls a maintenance command.
type Options struct {
	// DryRun reports the planned actions without mutating anything.
	DryRun bool
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return logging.NewNop()
	}
	return o.Logger
}
