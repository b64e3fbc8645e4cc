package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	durationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

	// DigestCycles counts notification cycles by outcome
	// (sent, skipped, config_error, delivery_error, store_error).
	DigestCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reseller_vault_digest_cycles_total",
			Help: "Total number of notification cycles, by outcome.",
		},
		[]string{"outcome"},
	)

	// DigestAlerts counts individual alerts included in sent digests, by level.
	DigestAlerts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reseller_vault_digest_alerts_total",
			Help: "Total number of alerts included in sent digests, by level (account or slot).",
		},
		[]string{"level"},
	)

	// CycleDuration measures the duration of notification cycles.
	CycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reseller_vault_digest_cycle_duration_seconds",
			Help:    "Histogram of notification cycle duration in seconds, by success status.",
			Buckets: durationBuckets,
		},
		[]string{"success"},
	)

	// StoreWrites counts document writes by collection.
	StoreWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reseller_vault_store_writes_total",
			Help: "Total number of document writes, by collection.",
		},
		[]string{"collection"},
	)

	// WatchSnapshots counts snapshots pushed to watch subscribers by collection.
	WatchSnapshots = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reseller_vault_watch_snapshots_total",
			Help: "Total number of collection snapshots pushed to watch subscribers, by collection.",
		},
		[]string{"collection"},
	)

	// HttpRequestsTotal counts handled HTTP requests.
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reseller_vault_http_requests_total",
			Help: "Total number of HTTP requests, by endpoint and status.",
		},
		[]string{"endpoint", "status"},
	)

	// HttpRequestDuration measures HTTP request latency.
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reseller_vault_http_request_duration_seconds",
			Help:    "Histogram of HTTP request duration in seconds, by endpoint.",
			Buckets: durationBuckets,
		},
		[]string{"endpoint"},
	)
)

// MetricsHandler returns the HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// ObserveCycleDuration simplifies observing notification cycle duration.
func ObserveCycleDuration(success bool, start time.Time) {
	successStr := "false"
	if success {
		successStr = "true"
	}
	CycleDuration.WithLabelValues(successStr).Observe(time.Since(start).Seconds())
}
