package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	computeRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_total_service",
			Subsystem: "http",
			Name:      "compute_requests_total",
			Help:      "Total number of compute requests by outcome",
		},
		[]string{"result"},
	)

	computeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_total_service",
			Subsystem: "http",
			Name:      "compute_duration_seconds",
			Help:      "Histogram of compute request durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	computesInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "order_total_service",
			Subsystem: "http",
			Name:      "computes_in_progress",
			Help:      "Number of compute requests currently being handled",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		computeRequestsTotal,
		computeDuration,
		computesInProgress,
	)
}
