package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prediction_cache_hits_total",
			Help: "Total number of prediction queries served from a session cache",
		},
	)

	PredictionCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prediction_cache_misses_total",
			Help: "Total number of prediction queries not found in a session cache",
		},
	)

	// PredictionsResolved is labelled by source: api, mock.
	PredictionsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_resolved_total",
			Help: "Total number of prediction queries resolved after a cache miss",
		},
		[]string{"source"},
	)

	// BackendFailures is labelled by kind: network, timeout, http_status, malformed, breaker_open.
	BackendFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_backend_failures_total",
			Help: "Total number of failed prediction backend calls",
		},
		[]string{"kind"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "prediction_sessions_active",
			Help: "Current number of live prediction sessions",
		},
	)

	// FeedbackSubmissions is labelled by outcome: sent, invalid, failed.
	FeedbackSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_submissions_total",
			Help: "Total number of feedback form submissions",
		},
		[]string{"outcome"},
	)

	// CatalogPredictions is labelled by status and by whether the catalog was used.
	CatalogPredictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_predictions_total",
			Help: "Total number of predictions served by the prediction backend",
		},
		[]string{"status", "model_used"},
	)

	// EventsConsumed is labelled by event type and by outcome (recorded, invalid, failed).
	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_events_consumed_total",
			Help: "Total number of recommendation events read by the aggregator",
		},
		[]string{"type", "outcome"},
	)
)
