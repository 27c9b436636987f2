// Package registry rewrites the content directory recorded for each
// installed product in a key-value store.
//
// The store is the Windows registry in production: every subkey of a base
// path is one product, and the ContentDir string value names its content
// folder. Rewriter compares each value, without trailing separators,
// against a set of target folders and points matches at the "X Library"
// variant of the folder.
//
// The Store interface isolates the platform specific part; OpenSystemStore
// returns the registry-backed implementation on Windows and
// ErrUnsupportedPlatform elsewhere.
package registry
