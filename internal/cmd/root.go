package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nicontent/nicontent/version"
)

const (
	groupLibrary   = "library"
	groupUtilities = "utilities"
)

// NewRootCmd creates and returns the root cobra command for the nicontent
// CLI. It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nicontent",
		Short: "nicontent - keep \"X\" and \"X Library\" content folders in order",
		Long: `nicontent maintains a sample content library where every product may exist
both as "X" and as "X Library".

Use subcommands to perform different operations:
  - move:   move every "X Library" folder to the backup root
  - rename: append " Library" to the given folders
  - pairs:  show which folders belong together
  - mount:  browse the pairing as a read-only filesystem
  - seed:   generate a sample library to try the above on`,
		Version: version.GetFullVersion(),
	}
	addConfigFlag(rootCmd)

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupLibrary,
		Title: "Library Maintenance",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	moveCmd := NewMoveCmd()
	renameCmd := NewRenameCmd()
	pairsCmd := NewPairsCmd()
	mountCmd := NewMountCmd()
	seedCmd := NewSeedCmd()
	configCmd := NewConfigCmd()
	versionCmd := NewVersionCmd("nicontent")

	moveCmd.GroupID = groupLibrary
	renameCmd.GroupID = groupLibrary
	pairsCmd.GroupID = groupLibrary
	mountCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	configCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(moveCmd, renameCmd, pairsCmd, mountCmd, seedCmd, configCmd, versionCmd)

	return rootCmd
}
