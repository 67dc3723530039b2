package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Storefront chat metrics
var (
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autopecas",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Total chat turns handled, by outcome",
		},
		[]string{"outcome"},
	)

	CompletionErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autopecas",
			Subsystem: "chat",
			Name:      "completion_errors_total",
			Help:      "Total completion upstream failures",
		},
		[]string{"provider", "error_type"},
	)

	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "autopecas",
			Subsystem: "chat",
			Name:      "completion_duration_seconds",
			Help:      "Completion upstream call duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 15, 30},
		},
		[]string{"provider", "status"},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "autopecas",
			Subsystem: "chat",
			Name:      "sessions_active",
			Help:      "Conversation sessions currently tracked",
		},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "autopecas",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint", "status"},
	)
)

// Outcome labels for ChatTurnsTotal.
const (
	OutcomeCompleted = "completed"
	OutcomeDegraded  = "degraded"
)
