package middleware

import (
	"net/http"
)

// Admitter decides whether a request may proceed right now.
type Admitter interface {
	Allow() bool
}

// RateLimit rejects requests the admitter refuses by calling reject, and
// notifies onReject (optional) each time.
func RateLimit(a Admitter, reject http.HandlerFunc, onReject func()) func(http.Handler) http.Handler {
	if onReject == nil {
		onReject = func() {}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.Allow() {
				onReject()
				w.Header().Set("Retry-After", "1")
				reject(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
