package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_book_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_book_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipe_book_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	// Recipe cache lookups by result (hit, miss, error)
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_book_cache_lookups_total",
			Help: "Total number of recipe cache lookups",
		},
		[]string{"result"},
	)

	// Recipe events by type and status (published, failed, skipped)
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_book_events_total",
			Help: "Total number of recipe events",
		},
		[]string{"type", "status"},
	)
)

// RecordRequest records one finished HTTP request.
func RecordRequest(method, route, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Cache lookup results
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// RecordCacheLookup records the result of one cache lookup.
func RecordCacheLookup(result string) {
	CacheLookups.WithLabelValues(result).Inc()
}

// RecordEvent records the outcome of publishing a recipe event.
func RecordEvent(eventType, status string) {
	EventsTotal.WithLabelValues(eventType, status).Inc()
}
