// Package logging assembles structured slog loggers and attribute helpers for
// the Symphony CLI.
//
// It owns the console and JSON handlers and the level plumbing. The CLI's
// user-facing output never goes through here; these loggers carry diagnostics
// only and default to stderr so they never mix with command results. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
