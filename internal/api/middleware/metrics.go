package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RequestObserver receives one call per completed request.
// *metrics.Metrics satisfies it.
type RequestObserver interface {
	ObserveRequest(route, method string, status int, latency time.Duration)
}

// unmatchedRoute labels requests chi could not route, keeping label
// cardinality bounded no matter what paths clients probe.
const unmatchedRoute = "unmatched"

// Metrics records request count and latency labelled by chi route pattern.
func Metrics(obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newStatusRecorder(w)

			next.ServeHTTP(wrapped, r)

			// The pattern is only known once routing has happened.
			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			obs.ObserveRequest(route, r.Method, wrapped.status, time.Since(start))
		})
	}
}
