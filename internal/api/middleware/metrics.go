package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the HTTP surface and the
// operation counters.
type Metrics struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	operationsTotal *prometheus.CounterVec
}

// NewMetrics registers the instruments with reg. Passing nil registers into
// a private throwaway registry, which keeps tests isolated.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Metrics{
		requestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "opsdesk_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		requestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "opsdesk_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),

		operationsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "opsdesk_operations_total",
			Help: "Total number of back-office operations by agent.",
		}, []string{"agent"}),
	}
}

// RecordOperation increments the per-agent operation counter. Wired into the
// registry as its operation hook.
func (m *Metrics) RecordOperation(agentID string) {
	m.operationsTotal.WithLabelValues(agentID).Inc()
}

// Middleware instruments every request with duration and count, labeled by
// the matched chi route pattern rather than the raw path.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(rw.statusCode)

		m.requestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(r.Method, route, status).Inc()
	})
}
