package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Health check outcomes recorded on health_checks_total.
const (
	OutcomeOK               = "ok"
	OutcomeMethodNotAllowed = "method_not_allowed"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec
	HealthChecks *prometheus.CounterVec
	RateLimited  prometheus.Counter
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served, by route pattern, method and status.",
		}, []string{"route", "method", "status"}),

		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),

		HealthChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "health_checks_total",
			Help: "Total number of status endpoint calls, by outcome.",
		}, []string{"outcome"}),

		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_requests_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPLatency,
		m.HealthChecks,
		m.RateLimited,
	)

	// Pre-create both outcome series so dashboards see zeros before traffic.
	m.HealthChecks.WithLabelValues(OutcomeOK)
	m.HealthChecks.WithLabelValues(OutcomeMethodNotAllowed)

	return m
}

// ObserveRequest records a finished HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, latency time.Duration) {
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(route, method).Observe(latency.Seconds())
}

// HealthHook returns the callback expected by handler.NewHealthHandler.
// The handler only ever sees a plain callback, never a prometheus type.
func (m *Metrics) HealthHook() func(outcome string) {
	return func(outcome string) {
		m.HealthChecks.WithLabelValues(outcome).Inc()
	}
}
