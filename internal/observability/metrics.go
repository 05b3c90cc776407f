package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "mentoria_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// ProfileSubmissions counts Carômetro submissions by outcome
	ProfileSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentoria_profile_submissions_total",
			Help: "Number of profile questionnaire submissions",
		},
		[]string{"status"},
	)

	// Registrations counts registration attempts by outcome
	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentoria_registrations_total",
			Help: "Number of account registration attempts",
		},
		[]string{"status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentoria_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation", "result"},
	)
)
