package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label for successful generations; failures use the error code.
const OutcomeSuccess = "success"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	DocumentGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_generations_total",
			Help: "Total number of document generation attempts by outcome",
		},
		[]string{"outcome"},
	)

	AICallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ai_call_duration_seconds",
			Help:    "Duration of chat completion calls in seconds",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 45, 60, 90, 120},
		},
	)

	DocumentPlaceholders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_placeholders_total",
			Help: "Document fields missing from the AI reply and replaced by a placeholder",
		},
		[]string{"field"},
	)
)
