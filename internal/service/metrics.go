package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shoppy",
			Subsystem: "checkout",
			Name:      "orders_total",
			Help:      "Total number of checkout attempts by result",
		},
		[]string{"result"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shoppy",
			Subsystem: "checkout",
			Name:      "duration_seconds",
			Help:      "Histogram of checkout transaction durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shoppy",
			Subsystem: "order_cache",
			Name:      "lookups_total",
			Help:      "Total number of order cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsTotal,
		checkoutDuration,
		orderCacheLookups,
	)
}
