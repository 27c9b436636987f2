package maintain

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nicontent/nicontent/content"
)

var errInjected = errors.New("injected failure")

// fakeFS is an in-memory FS that records every mutation.
type fakeFS struct {
	dirs    map[string]bool // path -> is directory
	calls   []string
	failOn  map[string]bool // source path whose move/rename fails
	mkdirOK bool
}

func newFakeFS(paths map[string]bool) *fakeFS {
	return &fakeFS{dirs: paths, failOn: map[string]bool{}, mkdirOK: true}
}

func (f *fakeFS) ListEntries(root string) ([]content.Listing, error) {
	var out []content.Listing
	for p, isDir := range f.dirs {
		if filepath.Dir(p) == root {
			out = append(out, content.Listing{Name: filepath.Base(p), Path: p, IsDir: isDir})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeFS) Move(src, dst string) error {
	f.calls = append(f.calls, "move "+src+" -> "+dst)
	if f.failOn[src] {
		return errInjected
	}
	f.dirs[dst] = f.dirs[src]
	delete(f.dirs, src)
	return nil
}

func (f *fakeFS) Rename(src, newName string) error {
	f.calls = append(f.calls, "rename "+src+" -> "+newName)
	if f.failOn[src] {
		return errInjected
	}
	dst := filepath.Join(filepath.Dir(src), newName)
	f.dirs[dst] = f.dirs[src]
	delete(f.dirs, src)
	return nil
}

func (f *fakeFS) Exists(path string) bool {
	_, ok := f.dirs[path]
	return ok
}

func (f *fakeFS) IsDir(path string) bool {
	return f.dirs[path]
}

func (f *fakeFS) MkdirAll(path string) error {
	f.calls = append(f.calls, "mkdir "+path)
	if !f.mkdirOK {
		return errInjected
	}
	f.dirs[path] = true
	return nil
}

func (f *fakeFS) mutations() []string {
	var out []string
	for _, c := range f.calls {
		if !strings.HasPrefix(c, "mkdir ") {
			out = append(out, c)
		}
	}
	return out
}
