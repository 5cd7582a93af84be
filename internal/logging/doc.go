// Package logging assembles structured slog loggers and formatting helpers used
// across the affixsplit pipeline.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so stage code tags log lines with
// the same keys (component, stage, counts). Logs go to stderr by default so
// that stdout stays reserved for the affix report. The package also provides
// a no-op logger for tests and wiring code that cannot fail.
package logging
