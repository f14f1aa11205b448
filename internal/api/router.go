package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/aigem2/aigem-backend/internal/api/handler"
	apimw "github.com/aigem2/aigem-backend/internal/api/middleware"
	"github.com/aigem2/aigem-backend/internal/metrics"
	"github.com/aigem2/aigem-backend/internal/ratelimiter"
)

// Deps collects what the router needs from main.
type Deps struct {
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Limiter  *ratelimiter.Limiter
	Logger   *zap.Logger
	// Now overrides the clock used in status documents; nil means time.Now.
	Now func() time.Time
}

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.RealIP)               // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1 << 20)) // 1 MB max request body
	r.Use(apimw.CorrelationID)        // X-Correlation-ID inject / echo
	r.Use(apimw.Metrics(d.Metrics))
	r.Use(apimw.RequestLogger(d.Logger))
	r.Use(chimw.Recoverer) // must sit inside Metrics and RequestLogger
	r.Use(chimw.GetHead)   // HEAD → GET only for routes without their own HEAD

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	hh := handler.NewHealthHandler(d.Now, d.Metrics.HealthHook())

	// Prometheus scrape endpoint; never rate limited.
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(apimw.RateLimit(d.Limiter, handler.TooManyRequests, d.Metrics.RateLimited.Inc))

		// Registered for every method: the handler owns the 405 reply.
		r.HandleFunc("/api/test", hh.Health)
		r.HandleFunc("/health", hh.Health)
	})

	return r
}
