package middleware

import (
	"log/slog"
	"net/http"

	"github.com/garrettladley/ouraface/internal/xslog"
)

// Logger injects base into the request context. Must run before Logging
// and Recovery.
func Logger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := xslog.WithLogger(r.Context(), base)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
