package beacons

import (
	"auction-analytics/internal/shared/metrics"
)

var (
	metricBeaconsPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBeacon,
			Name:      "published_total",
		},
		[]string{metrics.FieldOutcome},
	)

	metricBeaconsSentTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBeacon,
			Name:      "sent_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricBeaconQueueWaitSeconds = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBeacon,
			Name:      "queue_wait_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)

	metricBeaconSendSeconds = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBeacon,
			Name:      "send_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)
)
