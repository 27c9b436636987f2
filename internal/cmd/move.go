package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nicontent/nicontent/content"
	"github.com/nicontent/nicontent/maintain"
	"github.com/nicontent/nicontent/report"
)

// NewMoveCmd creates the move subcommand.
func NewMoveCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "move",
		Short: `Move every "X Library" folder to the backup root`,
		Long: `Move every folder under the library root whose name ends with " Library"
into the backup root, keeping its name. The root and backup come from the
[library] section of the config file. The backup root is created if needed.

The first failed move stops the command; folders already moved stay moved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd, dryRun)
		},
	}
	addDryRunFlag(cmd, &dryRun)

	return cmd
}

func runMove(cmd *cobra.Command, dryRun bool) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	return env.mutate(dryRun, func() error {
		fsys := maintain.OSFS{}
		lib, err := content.Load(fsys, env.cfg.Library.Root)
		if err != nil {
			return err
		}
		groups := lib.FindPairs()
		env.log.Debug("library loaded", "root", lib.Root, "entries", lib.Len(), "groups", len(groups))

		actions, err := maintain.Move(fsys, lib, env.cfg.Library.Backup, maintain.Options{
			DryRun: dryRun,
			Logger: env.log,
		})
		if len(actions) > 0 {
			fmt.Fprintln(env.out, report.Actions("move", actions, dryRun))
		}
		return err
	})
}
