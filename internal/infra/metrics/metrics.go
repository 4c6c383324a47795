// Package metrics holds the Prometheus collectors of the service. They register with the
// default registry, which the /metrics route exposes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
)

var (
	BackendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crosspromo_backend_requests_total",
			Help: "Total number of calls to the platform backend",
		},
		[]string{"operation", "outcome"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crosspromo_backend_request_duration_seconds",
			Help:    "Duration of calls to the platform backend in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	PartnershipActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crosspromo_partnership_actions_total",
			Help: "Total number of partnership requests and cancellations by outcome",
		},
		[]string{"action", "outcome"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crosspromo_viewer_sessions_active",
			Help: "Number of open viewer sessions",
		},
	)

	RealtimeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crosspromo_realtime_connections_active",
			Help: "Number of open browser WebSocket connections",
		},
	)

	StickersComposed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crosspromo_stickers_composed_total",
			Help: "Total number of composed offer stickers",
		},
		[]string{"outcome"},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crosspromo_events_published_total",
			Help: "Total number of partnership events handed to the event publisher",
		},
		[]string{"provider", "type", "outcome"},
	)
)
