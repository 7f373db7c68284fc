// Package metrics provides Prometheus metrics for the bot.
// It exports HTTP server metrics for the ops endpoints and pipeline metrics:
//   - medbot_queries_total: Counter with outcome label
//   - medbot_query_duration_seconds: Histogram of full pipeline latency
//   - medbot_source_requests_total: Counter with source and outcome labels
//   - medbot_source_request_duration_seconds: Histogram with source label
//   - medbot_translation_attempts_total: Counter with backend and outcome labels
//   - medbot_dependency_up: Gauge per probed dependency
//
// All metrics are registered with the Prometheus default registry
// during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome label values
const (
	OutcomeHit      = "hit"
	OutcomeMiss     = "miss"
	OutcomeError    = "error"
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeSkipped  = "skipped"

	OutcomeResults   = "results"
	OutcomeNoResults = "no_results"
	OutcomeInvalid   = "invalid"
)

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medbot_queries_total",
			Help: "Medication queries processed, by outcome",
		},
		[]string{"outcome"},
	)

	QueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "medbot_query_duration_seconds",
			Help:    "End-to-end latency of a medication query",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 40, 60},
		},
	)

	SourceRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medbot_source_requests_total",
			Help: "Knowledge source lookups, by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	SourceRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "medbot_source_request_duration_seconds",
			Help:    "Knowledge source lookup latency",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	TranslationAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medbot_translation_attempts_total",
			Help: "Translation attempts, by backend and outcome",
		},
		[]string{"backend", "outcome"},
	)

	DependencyUp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "medbot_dependency_up",
			Help: "Whether an external dependency answered the last connectivity probe (1) or not (0)",
		},
		[]string{"name", "kind"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(QueryDuration)
	prometheus.MustRegister(SourceRequestsTotal)
	prometheus.MustRegister(SourceRequestDuration)
	prometheus.MustRegister(TranslationAttemptsTotal)
	prometheus.MustRegister(DependencyUp)
}
