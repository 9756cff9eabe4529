package delivery

import (
	"auction-analytics/internal/shared/metrics"
)

var (
	metricPayloadsEnqueuedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDelivery,
			Name:      "payloads_enqueued_total",
		},
		[]string{metrics.FieldEventClass},
	)
	metricPayloadsSkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDelivery,
			Name:      "payloads_skipped_total",
		},
		[]string{metrics.FieldEventClass, "reason"},
	)
	metricBatchesDispatchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDelivery,
			Name:      "batches_dispatched_total",
		},
		[]string{},
	)
	metricBatchBytes = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDelivery,
			Name:      "batch_bytes",
			Buckets:   metrics.SizeBuckets,
		},
		[]string{},
	)
)
