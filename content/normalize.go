package content

import "strings"

// LibrarySuffix is the marker that distinguishes the two naming variants of
// a content folder.
const LibrarySuffix = " Library"

// Normalize returns the canonical key of name: name without a trailing
// LibrarySuffix, or name unchanged when it has none.
func Normalize(name string) string {
	return strings.TrimSuffix(name, LibrarySuffix)
}

// HasLibrarySuffix reports whether name ends with LibrarySuffix.
func HasLibrarySuffix(name string) bool {
	return strings.HasSuffix(name, LibrarySuffix)
}
