// Package logging builds the log/slog loggers used by the edat command and
// HTTP service. Records are JSON by default; the text format suits a
// terminal.
package logging
