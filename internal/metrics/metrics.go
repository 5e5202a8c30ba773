// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskhub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskhub_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	StoreSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "taskhub_task_store_sessions",
			Help: "Number of users with tasks loaded in the task store",
		},
	)
	StoreLoads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "taskhub_task_store_loads_total",
			Help: "Total number of task store reloads from the database",
		},
	)
	PrioritiesRefreshed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "taskhub_task_priorities_refreshed_total",
			Help: "Total number of persisted task priorities changed by the refresh job",
		},
	)
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskhub_change_events_published_total",
			Help: "Total number of change events published",
		},
		[]string{"entity", "type"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequests,
		HTTPDuration,
		StoreSessions,
		StoreLoads,
		PrioritiesRefreshed,
		EventsPublished,
	)
}
