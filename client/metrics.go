package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	surfacePublic  = "public"
	surfacePrivate = "private"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phoenix_admin_client",
			Name:      "requests_total",
			Help:      "Requests issued per surface, labelled by HTTP status code or \"error\".",
		},
		[]string{"surface", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "phoenix_admin_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time from send to fully read response.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"surface"},
	)

	sessionInvalidationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "phoenix_admin_client",
			Name:      "session_invalidations_total",
			Help:      "401 responses on the private surface that invalidated the session.",
		},
	)
)

func observeRequest(surface, code string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(surface, code).Inc()
	requestDuration.WithLabelValues(surface).Observe(elapsed.Seconds())
}
