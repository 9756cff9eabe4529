package aggregators

import (
	"auction-analytics/internal/shared/metrics"
)

// metricEventsAggregatedTotal counts events applied to auction records.
//
// event_type is the host event name; unknown kinds are counted under their own
// name with an empty error_code since they are ignored rather than rejected.
var (
	metricEventsAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "events_total",
		},
		[]string{metrics.FieldEventType, metrics.FieldErrorCode},
	)
)
