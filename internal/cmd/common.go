package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nicontent/nicontent/config"
	"github.com/nicontent/nicontent/logging"
	"github.com/nicontent/nicontent/maintain"
)

// ErrMountUnsupported is returned by mount on platforms without FUSE.
var ErrMountUnsupported = errors.New("mount is only supported on linux and freebsd")

const configFlag = "config"

// runEnv is what every command needs after flag parsing.
type runEnv struct {
	cfg *config.Config
	log *slog.Logger
	out io.Writer
}

func addConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(configFlag, "", "Path to config file (default $"+config.EnvConfigPath+" or the user config directory)")
}

func configPath(cmd *cobra.Command) string {
	if f := cmd.Flag(configFlag); f != nil {
		return f.Value.String()
	}
	return ""
}

// loadEnv reads the configuration and builds the run logger. Logs go to
// the command's stderr; reports go to its stdout.
func loadEnv(cmd *cobra.Command) (*runEnv, error) {
	cfg, path, exists, err := config.Load(configPath(cmd))
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	logger = logging.WithRun(logger, cmd.CommandPath())
	if exists {
		logger.Debug("loaded config", "path", path)
	} else {
		logger.Debug("no config file, using defaults", "path", path)
	}

	return &runEnv{cfg: cfg, log: logger, out: cmd.OutOrStdout()}, nil
}

// mutate runs fn holding the library lock. Previews run without it.
func (e *runEnv) mutate(dryRun bool, fn func() error) error {
	if dryRun {
		return fn()
	}
	lock, err := maintain.AcquireLock(e.cfg.Library.LockFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			e.log.Warn("release lock", "path", lock.Path(), "error", err)
		}
	}()
	e.log.Debug("lock acquired", "path", lock.Path())
	return fn()
}

func addDryRunFlag(cmd *cobra.Command, dryRun *bool) {
	cmd.Flags().BoolVarP(dryRun, "dry-run", "n", false, "Show what would change without touching anything")
}
