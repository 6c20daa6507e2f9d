package middleware

import (
	"net/http"
	"time"

	"github.com/garrettladley/ouraface/internal/xslog"
)

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Logging records each request at debug level; scrapes are frequent.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		xslog.FromContext(r.Context()).DebugContext(
			r.Context(),
			"http request",
			xslog.Method(r.Method),
			xslog.Path(r.URL.Path),
			xslog.Status(wrapped.status),
			xslog.Duration(time.Since(start)),
		)
	})
}
