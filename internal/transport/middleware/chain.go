// Package middleware provides the HTTP middleware stack: panic recovery,
// request ids, request logging, CORS, rate limiting, and token auth.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware into one. Chain(a, b)(h) yields a(b(h)), so the
// first middleware runs outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
