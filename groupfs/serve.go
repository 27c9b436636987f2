//go:build linux || freebsd

package groupfs

import (
	"context"
	"fmt"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
)

// Serve mounts filesystem read-only at mountpoint and serves it until ctx
// is cancelled, then unmounts.
func Serve(ctx context.Context, mountpoint string, filesystem *FS) error {
	c, err := fuse.Mount(
		mountpoint,
		fuse.FSName("nicontent"),
		fuse.Subtype("groupfs"),
		fuse.ReadOnly(),
	)
	if err != nil {
		return fmt.Errorf("mount %s: %w", mountpoint, err)
	}
	defer c.Close()

	served := make(chan error, 1)
	go func() {
		served <- fs.Serve(c, filesystem)
	}()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
		if err := fuse.Unmount(mountpoint); err != nil {
			return fmt.Errorf("unmount %s: %w", mountpoint, err)
		}
		return <-served
	}
}
