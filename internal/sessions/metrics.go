package sessions

import (
	"auction-analytics/internal/shared/metrics"
)

const (
	FlushTriggerVisibility = "visibility"
	FlushTriggerEviction   = "eviction"
	FlushTriggerShutdown   = "shutdown"
)

var (
	metricSessionsOpenedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSession,
			Name:      "opened_total",
		},
		[]string{},
	)

	metricSessionsActive = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSession,
			Name:      "active",
		},
	)

	// metricSessionFlushesTotal counts flushes by what triggered them:
	// visibility (the host reported the page hidden), eviction (idle ttl or
	// capacity) or shutdown.
	metricSessionFlushesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSession,
			Name:      "flushes_total",
		},
		[]string{"trigger"},
	)

	metricEventsTrackedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSession,
			Name:      "events_tracked_total",
		},
		[]string{metrics.FieldOutcome},
	)
)
