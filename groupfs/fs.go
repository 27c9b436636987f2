//go:build linux || freebsd

package groupfs

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/nicontent/nicontent/content"
)

// FS is the grouped library view.
type FS struct {
	lib     *content.Library
	groups  []content.Group
	byKey   map[string]int
	dirIno  []uint64 // by group index
	linkIno []uint64 // by entry index
	built   time.Time
}

var (
	_ fs.FS                 = (*FS)(nil)
	_ fs.HandleReadDirAller = (*rootDir)(nil)
	_ fs.NodeStringLookuper = (*rootDir)(nil)
	_ fs.HandleReadDirAller = (*groupDir)(nil)
	_ fs.NodeStringLookuper = (*groupDir)(nil)
	_ fs.NodeReadlinker     = (*memberLink)(nil)
)

// New groups lib, linking its entries, and returns the view. Keys that
// cannot be used as a directory name are left out.
func New(lib *content.Library) *FS {
	f := &FS{
		lib:     lib,
		byKey:   make(map[string]int),
		linkIno: make([]uint64, lib.Len()),
		built:   time.Now(),
	}
	inodes := newInodeAllocator()
	for _, g := range lib.FindPairs() {
		if !validName(g.Key) {
			continue
		}
		f.byKey[g.Key] = len(f.groups)
		f.groups = append(f.groups, g)
		f.dirIno = append(f.dirIno, inodes.next())
		for _, i := range g.Members {
			f.linkIno[i] = inodes.next()
		}
	}
	return f
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".."
}

// Root returns the root directory node.
func (f *FS) Root() (fs.Node, error) {
	return &rootDir{fs: f}, nil
}

func (f *FS) dirAttr(a *fuse.Attr, inode uint64) {
	a.Inode = inode
	a.Mode = os.ModeDir | 0o555
	a.Mtime = f.built
	a.Ctime = f.built
	a.Atime = f.built
}

type rootDir struct {
	fs *FS
}

func (d *rootDir) Attr(ctx context.Context, a *fuse.Attr) error {
	d.fs.dirAttr(a, rootInode)
	return nil
}

func (d *rootDir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	dirents := make([]fuse.Dirent, 0, len(d.fs.groups))
	for g, group := range d.fs.groups {
		dirents = append(dirents, fuse.Dirent{Inode: d.fs.dirIno[g], Name: group.Key, Type: fuse.DT_Dir})
	}
	return dirents, nil
}

func (d *rootDir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	g, ok := d.fs.byKey[name]
	if !ok {
		return nil, syscall.ENOENT
	}
	return &groupDir{fs: d.fs, group: g}, nil
}

// groupDir lists the members of one group.
type groupDir struct {
	fs    *FS
	group int
}

func (d *groupDir) Attr(ctx context.Context, a *fuse.Attr) error {
	d.fs.dirAttr(a, d.fs.dirIno[d.group])
	return nil
}

func (d *groupDir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	members := d.fs.groups[d.group].Members
	dirents := make([]fuse.Dirent, 0, len(members))
	for _, i := range members {
		dirents = append(dirents, fuse.Dirent{
			Inode: d.fs.linkIno[i],
			Name:  d.fs.lib.Entry(i).Name,
			Type:  fuse.DT_Link,
		})
	}
	return dirents, nil
}

func (d *groupDir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	for _, i := range d.fs.groups[d.group].Members {
		if d.fs.lib.Entry(i).Name == name {
			return &memberLink{fs: d.fs, entry: i}, nil
		}
	}
	return nil, syscall.ENOENT
}

// memberLink points at the real location of one entry.
type memberLink struct {
	fs    *FS
	entry int
}

func (l *memberLink) target() string {
	path := l.fs.lib.Entry(l.entry).Path
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func (l *memberLink) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = l.fs.linkIno[l.entry]
	a.Mode = os.ModeSymlink | 0o777
	a.Size = uint64(len(l.target()))
	a.Mtime = l.fs.built
	a.Ctime = l.fs.built
	a.Atime = l.fs.built
	return nil
}

func (l *memberLink) Readlink(ctx context.Context, req *fuse.ReadlinkRequest) (string, error) {
	return l.target(), nil
}
