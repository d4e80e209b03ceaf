// Package middleware wraps http.Handler values for the edat HTTP service.
//
// Each constructor returns a func(http.Handler) http.Handler; Chain
// composes them so the first one listed sees the request first. Error
// bodies are JSON objects with a single "error" member. Logging goes
// through the default slog logger.
package middleware
