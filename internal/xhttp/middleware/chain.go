// Package middleware holds the http.Handler wrappers used by the metrics
// endpoint.
package middleware

import "net/http"

// Chain wraps h so the first middleware runs outermost.
func Chain(h http.Handler, middleware ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}
