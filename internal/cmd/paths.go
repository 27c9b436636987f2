package cmd

import (
	"path/filepath"
	"strings"
)

// pathsOverlap reports whether one path is equal to or nested inside the
// other. Relative paths are resolved against the working directory.
func pathsOverlap(a, b string) bool {
	a, b = absOrClean(a), absOrClean(b)
	return a == b || within(a, b) || within(b, a)
}

func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func absOrClean(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
