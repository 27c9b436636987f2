// Package maintain implements the mutating maintenance commands of a
// content library: relocating "X Library" folders to a backup root and
// renaming plain folders to their "X Library" variant.
//
// Both commands work through the FS collaborator so they can be exercised
// without touching a real disk. They are fail-fast: the first failing move
// or rename aborts the command, and actions already performed stay done.
// With Options.DryRun set, nothing is mutated and the planned actions are
// returned instead.
package maintain
