// Package metrics defines the Prometheus instruments for the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Requests counts API requests by endpoint and status.
	Requests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "financecalc_requests_total",
			Help: "Total API requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	// RequestDuration tracks API request latency by endpoint.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "financecalc_request_duration_seconds",
			Help:    "API request latency by endpoint",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// RateLookups counts exchange-rate lookups by outcome.
	RateLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "financecalc_rate_lookups_total",
			Help: "Exchange-rate lookups by outcome (success, error)",
		},
		[]string{"outcome"},
	)
)
