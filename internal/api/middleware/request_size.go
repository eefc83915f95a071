package middleware

import (
	"net/http"
)

// DefaultMaxBodySize is 1MB, plenty for an event form or a join request
const DefaultMaxBodySize int64 = 1 << 20

// RequestSize limits the size of incoming request bodies with
// http.MaxBytesReader; oversized bodies surface as read errors in the
// handler.
func RequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

			next.ServeHTTP(w, r)
		})
	}
}

// PublicRequestSize applies the default body limit.
func PublicRequestSize() func(http.Handler) http.Handler {
	return RequestSize(DefaultMaxBodySize)
}
