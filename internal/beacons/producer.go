package beacons

import (
	"context"

	"auction-analytics/internal/shared/loggers"

	"github.com/benbjohnson/clock"
)

const (
	outcomeQueued  = "queued"
	outcomeDropped = "dropped"
)

// Producer publishes beacons onto a partitioned queue keyed by destination
// URL, so batches for one destination are sent in flush order. It never
// blocks: when the destination's partition is full the beacon is dropped.
type Producer struct {
	queue *PartitionedQueue[Beacon]
	clock clock.Clock
}

func NewProducer(queue *PartitionedQueue[Beacon], clk clock.Clock) *Producer {
	return &Producer{queue: queue, clock: clk}
}

// Dispatch implements delivery.Dispatcher.
func (producer *Producer) Dispatch(ctx context.Context, url string, blob []byte) {
	beacon := Beacon{URL: url, Body: blob, EnqueuedAt: producer.clock.Now()}
	if producer.queue.TryPublish(url, beacon) {
		metricBeaconsPublishedTotal.WithLabelValues(outcomeQueued).Inc()
		return
	}

	metricBeaconsPublishedTotal.WithLabelValues(outcomeDropped).Inc()
	loggers.Ctx(ctx).Warn().
		Str(loggers.FieldDestination, url).
		Int(loggers.FieldBatchBytes, len(blob)).
		Msg("beacon partition full, batch dropped")
}
