// Package main provides the nicontent command-line interface.
//
// nicontent keeps a sample content library tidy where a product can exist
// both as "X" and as "X Library". It groups folders by name without the
// " Library" suffix and can move or rename them accordingly.
//
// The binary supports these subcommands:
//   - move: Move every "X Library" folder to the backup root
//   - rename: Append " Library" to the given folders
//   - pairs: Show which folders belong to the same product
//   - mount: Browse the grouping as a read-only FUSE filesystem
//   - config init: Write a sample config file
//   - version: Print build information
//
// The registry rewriter ships separately as cmd/contentdir.
package main
