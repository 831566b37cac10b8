// Package logging assembles the structured slog loggers used by the CLI.
//
// It owns level parsing and the console/JSON handler selection so every
// component emits log lines with the same shape, and provides a no-op
// logger for tests and wiring code that cannot fail.
package logging
