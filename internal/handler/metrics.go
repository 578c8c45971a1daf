package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	statusEventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shoppy",
			Subsystem: "kafka_consumer",
			Name:      "status_events_processed_total",
			Help:      "Total number of successfully applied order status events",
		},
	)

	statusEventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shoppy",
			Subsystem: "kafka_consumer",
			Name:      "status_events_failed_total",
			Help:      "Total number of failed order status event processing attempts",
		},
	)

	statusEventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shoppy",
			Subsystem: "kafka_consumer",
			Name:      "status_events_dlq_total",
			Help:      "Total number of order status events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shoppy",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	statusEventDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shoppy",
			Subsystem: "kafka_consumer",
			Name:      "status_event_processing_duration_seconds",
			Help:      "Histogram of order status event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	statusEventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shoppy",
			Subsystem: "kafka_consumer",
			Name:      "status_events_in_progress",
			Help:      "Number of order status events currently being processed",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shoppy",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of requests to get order by ID",
		},
		[]string{"status"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shoppy",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of request durations for get order by ID",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shoppy",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress requests to get order by ID",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		statusEventsProcessed,
		statusEventsFailed,
		statusEventsDLQ,
		commitErrors,
		statusEventDuration,
		statusEventsInProgress,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,
	)
}
