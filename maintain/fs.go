package maintain

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nicontent/nicontent/content"
)

// FS is the filesystem collaborator used by the maintenance commands.
type FS interface {
	content.Lister
	Move(src, dst string) error
	Rename(src, newName string) error
	Exists(path string) bool
	IsDir(path string) bool
	MkdirAll(path string) error
}

// OSFS implements FS on the host filesystem.
type OSFS struct{}

var _ FS = OSFS{}

// ListEntries returns the direct children of root sorted by name.
// Symlinks are classified by their target.
func (OSFS) ListEntries(root string) ([]content.Listing, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, content.ErrNotDirectory)
	}
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	listing := make([]content.Listing, 0, len(dirEntries))
	for _, d := range dirEntries {
		path := filepath.Join(root, d.Name())
		isDir := d.IsDir()
		if d.Type()&fs.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil {
				isDir = target.IsDir()
			}
		}
		listing = append(listing, content.Listing{Name: d.Name(), Path: path, IsDir: isDir})
	}
	return listing, nil
}

// Move relocates src to dst. When a plain rename is impossible because the
// two paths live on different volumes, the tree is copied and the source
// removed afterwards.
func (OSFS) Move(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("move %s: %w: %s", src, ErrDestinationExists, dst)
	}
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}
	if err := copyTree(src, dst); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return os.RemoveAll(src)
}

// Rename renames src to newName inside the same parent directory.
func (OSFS) Rename(src, newName string) error {
	return os.Rename(src, filepath.Join(filepath.Dir(src), newName))
}

func (OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}
