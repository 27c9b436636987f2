// Package cmd provides the command-line interface for the nicontent and
// contentdir binaries.
//
// It uses the Cobra library for command structure; the binaries run the
// commands through Fang for styled help and error output.
//
// nicontent commands:
//   - move: relocate "X Library" folders to the backup root
//   - rename: append " Library" to explicit folders
//   - pairs: print the grouping of the library root
//   - mount: serve the grouping as a read-only FUSE tree
//   - seed: generate a sample library
//   - config init, version
//
// contentdir is a single command that rewrites registry ContentDir values.
//
// Each command has its own constructor returning a *cobra.Command. Every
// run loads the config file, builds a logger tagged with a run ID and,
// unless previewing, holds the library lock while it changes anything.
package cmd
