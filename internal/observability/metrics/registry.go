package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, route and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ValidationFailuresTotal counts rejected writes by record type and field
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Total number of writes rejected by validation",
		},
		[]string{"record", "field"},
	)

	// RecordWritesTotal counts insert/update/delete attempts by outcome
	RecordWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_writes_total",
			Help: "Total number of record writes",
		},
		[]string{"record", "op", "outcome"},
	)
)
