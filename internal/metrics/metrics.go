package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
)

const namespace = "prostaff"

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	registry       *prometheus.Registry
	unlockOutcomes *prometheus.CounterVec
	profileReads   *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New creates the collectors on a dedicated registry, together with the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		unlockOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unlock_outcomes_total",
			Help:      "Profile unlock attempts by verdict and reason.",
		}, []string{"access", "reason"}),
		profileReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_reads_total",
			Help:      "Profile reads by mode and resolved access tier.",
		}, []string{"mode", "tier"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.unlockOutcomes,
		m.profileReads,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// ObserveUnlock counts one unlock outcome.
func (m *Metrics) ObserveUnlock(access domain.UnlockAccess, reason string) {
	m.unlockOutcomes.WithLabelValues(string(access), reason).Inc()
}

// ObserveProfileRead counts one profile served in mode ("single" or "list") at tier.
func (m *Metrics) ObserveProfileRead(mode string, tier domain.AccessTier) {
	m.profileReads.WithLabelValues(mode, string(tier)).Inc()
}

// ObserveHTTP records a completed request. route is the matched pattern, not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
