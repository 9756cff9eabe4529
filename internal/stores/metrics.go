package stores

import (
	"auction-analytics/internal/shared/metrics"
)

var (
	metricAuctionRecordsCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "auction_records_created_total",
		},
		[]string{},
	)
	metricBlobFallbackTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "storage_blob_fallback_total",
			Help:      "Stored blobs replaced by an empty object because they were unreadable or not a JSON value worth keeping.",
		},
		[]string{"key"},
	)
)
