// Package version provides build metadata for the nicontent and contentdir
// binaries.
//
// Version information comes from, in order of preference:
//   - variables (Version, Commit, Date) set at link time via -ldflags
//   - runtime build info from debug.ReadBuildInfo()
//   - development defaults
//
// Release builds set them with:
//
//	-ldflags "-X github.com/nicontent/nicontent/version.Version=v1.0.0 -X github.com/nicontent/nicontent/version.Commit=abc123"
package version
