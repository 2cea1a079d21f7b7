// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration prometheus.Histogram

	// Lookup metrics
	LookupsTotal *prometheus.CounterVec

	// Upstream metrics
	UpstreamCallDuration prometheus.Histogram
	UpstreamErrors       prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "token_pulse"
	}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total HTTP requests by status code",
		}, []string{"status"}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request handling latency",
			Buckets:   prometheus.DefBuckets,
		}),
		LookupsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Per-token lookups by pulse outcome",
		}, []string{"pulse"}),
		UpstreamCallDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_call_duration_seconds",
			Help:      "Aggregator call latency",
			Buckets:   prometheus.DefBuckets,
		}),
		UpstreamErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_errors_total",
			Help:      "Aggregator calls that failed or returned a non-2xx status",
		}),
	}
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}
