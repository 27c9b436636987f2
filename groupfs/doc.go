// Package groupfs serves a read-only FUSE view of a content library
// grouped by canonical key.
//
// The tree has one directory per canonical key. Each directory holds one
// symlink per group member, named after the member and pointing at its
// real location:
//
//	/Piano/Piano          -> /lib/Piano
//	/Piano/Piano Library  -> /lib/Piano Library
//	/Drums/Drums          -> /lib/Drums
//
// The grouping is computed once when the FS is built; later changes to the
// library are not reflected until the view is mounted again. The package
// builds on Linux and FreeBSD only.
package groupfs
