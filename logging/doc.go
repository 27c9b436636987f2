// Package logging assembles the slog loggers used by the nicontent tools.
//
// New builds a console (text) or JSON logger from Options, WithRun tags a
// logger with a fresh run ID and the command name, and NewNop returns a
// logger that discards everything for tests and optional wiring.
package logging
