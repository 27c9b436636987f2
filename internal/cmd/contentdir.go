package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nicontent/nicontent/registry"
	"github.com/nicontent/nicontent/report"
	"github.com/nicontent/nicontent/version"
)

// NewContentDirCmd creates the root command of the contentdir binary.
func NewContentDirCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "contentdir [--dry-run] <path>...",
		Short: `Point product ContentDir values at their "X Library" folders`,
		Long: `contentdir rewrites the content location recorded for each installed
product. Every product whose value, ignoring a trailing backslash, equals
one of the given paths is changed to "<path> Library\".

Products without a value are skipped. The hive, base key and value name
come from the [registry] section of the config file.`,
		Args:    cobra.MinimumNArgs(1),
		Version: version.GetFullVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContentDir(cmd, args, dryRun)
		},
	}
	addConfigFlag(cmd)
	addDryRunFlag(cmd, &dryRun)
	cmd.AddCommand(NewVersionCmd("contentdir"))

	return cmd
}

func runContentDir(cmd *cobra.Command, targets []string, dryRun bool) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	hive, err := registry.ParseHive(env.cfg.Registry.Hive)
	if err != nil {
		return err
	}
	store, err := registry.OpenSystemStore(hive)
	if err != nil {
		return err
	}

	return env.mutate(dryRun, func() error {
		rw := &registry.Rewriter{
			Store:    store,
			BasePath: env.cfg.Registry.BasePath,
			Field:    env.cfg.Registry.Field,
			DryRun:   dryRun,
			Logger:   env.log,
		}
		changes, err := rw.Run(targets)
		if len(changes) > 0 {
			fmt.Fprintln(env.out, report.Changes(env.cfg.Registry.Field, changes))
		} else if err == nil {
			env.log.Info("no matching products", "base", registry.KeyPath(string(hive), env.cfg.Registry.BasePath))
		}
		return err
	})
}
