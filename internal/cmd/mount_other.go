//go:build !linux && !freebsd

package cmd

import "github.com/spf13/cobra"

// NewMountCmd returns a hidden placeholder; there is no FUSE support on
// this platform.
func NewMountCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "mount MOUNTPOINT",
		Short:  "Mount a read-only view of the library grouped by product",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ErrMountUnsupported
		},
	}
}
