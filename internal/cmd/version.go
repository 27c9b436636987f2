package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nicontent/nicontent/version"
)

// NewVersionCmd creates the version subcommand for appName.
func NewVersionCmd(appName string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.Write(cmd.OutOrStdout(), appName)
		},
	}
}
