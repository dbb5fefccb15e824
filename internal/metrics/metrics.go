package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsHashed counts events canonically encoded and hashed by kind
	EventsHashed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethbridge_events_hashed_total",
			Help: "Total number of Ethereum events hashed",
		},
		[]string{"kind"},
	)

	// EventsStored counts store writes by backend, kind and outcome
	EventsStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethbridge_events_stored_total",
			Help: "Total number of Ethereum event store writes",
		},
		[]string{"backend", "kind", "outcome"},
	)

	// AddressParseFailures counts rejected Ethereum address strings
	AddressParseFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethbridge_address_parse_failures_total",
			Help: "Total number of Ethereum addresses that failed to parse",
		},
		[]string{"context"},
	)

	// RequestDuration tracks HTTP request handling time
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ethbridge_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethbridge_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
