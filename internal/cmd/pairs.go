package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nicontent/nicontent/content"
	"github.com/nicontent/nicontent/maintain"
	"github.com/nicontent/nicontent/report"
)

// NewPairsCmd creates the pairs subcommand.
func NewPairsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Show folders that belong to the same product",
		Long: `Group the folders under the library root by name without the " Library"
suffix and print every group with more than one member, together with the
folders each member is related to. Nothing is changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPairs(cmd, all)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Also list folders without a partner")

	return cmd
}

func runPairs(cmd *cobra.Command, all bool) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	lib, err := content.Load(maintain.OSFS{}, env.cfg.Library.Root)
	if err != nil {
		return err
	}
	groups := lib.FindPairs()

	fmt.Fprintln(env.out, report.Groups(lib, groups, report.GroupOptions{
		All:   all,
		Color: report.ShouldColorize(env.out),
	}))
	return nil
}
