// Package logging assembles the structured slog loggers used across costar.
//
// It owns the console and JSON handlers, level parsing, and attribute
// helpers so pipeline stages emit log lines with a consistent shape. A
// no-op logger is provided for tests and wiring code that cannot fail.
package logging
