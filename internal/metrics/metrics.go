// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// LeadsSubmitted counts enquiries and registrations by type and source.
	LeadsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_submitted_total",
			Help: "Leads captured from the public site",
		},
		[]string{"type", "source"},
	)

	// ListCacheLookups counts public list cache lookups by resource and
	// result (hit, miss, error).
	ListCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "list_cache_lookups_total",
			Help: "Public list cache lookups",
		},
		[]string{"resource", "result"},
	)

	// NotificationsProcessed counts worker outcomes (sent, retry, failed).
	NotificationsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_processed_total",
			Help: "Lead notification delivery attempts by outcome",
		},
		[]string{"outcome"},
	)
)
