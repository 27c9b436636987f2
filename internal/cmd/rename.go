package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nicontent/nicontent/maintain"
	"github.com/nicontent/nicontent/report"
)

// NewRenameCmd creates the rename subcommand.
func NewRenameCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rename [--dry-run] <path>...",
		Short: `Append " Library" to the given folders`,
		Long: `Rename each given folder from "X" to "X Library" in place.

Paths that do not exist, are not folders or already end with " Library"
are skipped, so running the command twice is harmless.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args, dryRun)
		},
	}
	addDryRunFlag(cmd, &dryRun)

	return cmd
}

func runRename(cmd *cobra.Command, paths []string, dryRun bool) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	return env.mutate(dryRun, func() error {
		actions, err := maintain.Rename(maintain.OSFS{}, paths, maintain.Options{
			DryRun: dryRun,
			Logger: env.log,
		})
		if len(actions) > 0 {
			fmt.Fprintln(env.out, report.Actions("rename", actions, dryRun))
		}
		return err
	})
}
