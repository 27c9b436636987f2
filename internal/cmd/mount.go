//go:build linux || freebsd

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nicontent/nicontent/content"
	"github.com/nicontent/nicontent/groupfs"
	"github.com/nicontent/nicontent/maintain"
	"github.com/nicontent/nicontent/version"
)

// NewMountCmd creates and returns the mount subcommand. It serves the
// grouped library view at a mountpoint until interrupted.
func NewMountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mount MOUNTPOINT",
		Short: "Mount a read-only view of the library grouped by product",
		Long: `Mount a read-only filesystem at MOUNTPOINT with one folder per product.
Each folder holds a symlink to every library folder of that product, so
"Piano" and "Piano Library" both appear under /Piano.

The view reflects the library at mount time. Press Ctrl-C to unmount.`,
		Args: cobra.ExactArgs(1),
		RunE: runMount,
	}
}

func runMount(cmd *cobra.Command, args []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	mountpoint := args[0]
	root, err := filepath.Abs(env.cfg.Library.Root)
	if err != nil {
		return fmt.Errorf("resolve library root: %w", err)
	}
	if pathsOverlap(root, mountpoint) {
		return fmt.Errorf("mountpoint %s overlaps library root %s", mountpoint, root)
	}

	lib, err := content.Load(maintain.OSFS{}, root)
	if err != nil {
		return err
	}
	filesystem := groupfs.New(lib)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env.log.Info("mounting",
		"version", version.GetVersion(),
		"mountpoint", mountpoint,
		"root", root,
		"entries", lib.Len(),
	)
	if err := groupfs.Serve(ctx, mountpoint, filesystem); err != nil {
		return err
	}
	env.log.Info("unmounted", "mountpoint", mountpoint)
	return nil
}
