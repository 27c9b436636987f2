//go:build linux || freebsd

package groupfs

import "sync"

// rootInode is reserved for the root directory.
const rootInode uint64 = 1

// inodeAllocator hands out increasing inode numbers above rootInode.
type inodeAllocator struct {
	mu      sync.Mutex
	highest uint64
}

func newInodeAllocator() *inodeAllocator {
	return &inodeAllocator{highest: rootInode}
}

func (a *inodeAllocator) next() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.highest++
	return a.highest
}
