package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout is used when Timeout gets a non-positive duration.
const DefaultTimeout = 30 * time.Second

// Timeout answers 503 with a JSON error when the handler runs longer than
// d. The handler's context is cancelled at the deadline.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	if d <= 0 {
		slog.Warn("middleware: timeout must be positive, using default",
			"provided", d, "default", DefaultTimeout)

		d = DefaultTimeout
	}

	return func(next http.Handler) http.Handler {
		timed := http.TimeoutHandler(next, d, `{"error":"request timed out"}`)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			timed.ServeHTTP(w, r)
		})
	}
}
