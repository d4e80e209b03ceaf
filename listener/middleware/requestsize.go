package middleware

import (
	"errors"
	"log/slog"
	"net/http"
)

// DefaultMaxBodySize is used when MaxBodySize gets a non-positive limit.
const DefaultMaxBodySize int64 = 1 << 20

// MaxBodySize limits request bodies with http.MaxBytesReader. A request
// whose Content-Length already exceeds the limit is answered with 413
// without calling the handler; otherwise the handler sees a read error
// that IsBodyTooLarge recognizes.
func MaxBodySize(limit int64) func(http.Handler) http.Handler {
	if limit <= 0 {
		slog.Warn("middleware: body limit must be positive, using default",
			"provided", limit, "default", DefaultMaxBodySize)

		limit = DefaultMaxBodySize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				WriteError(w, http.StatusRequestEntityTooLarge, "request body too large")

				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// IsBodyTooLarge reports whether err came from reading past the limit set
// by MaxBodySize.
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError

	return errors.As(err, &maxErr)
}
