// Package logging assembles structured slog loggers and formatting helpers used
// across cdplay.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and stamps every record with the session identifier of the
// invocation so log files shared by several cdplay runs can be told apart.
// When a log file is configured it receives a debug-level JSON copy of every
// record alongside the console output. A no-op logger is provided for tests
// and wiring code that cannot fail.
package logging
