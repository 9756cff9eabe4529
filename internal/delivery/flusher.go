package delivery

import (
	"bytes"
	"context"

	"auction-analytics/internal/shared/loggers"
)

// DefaultMaxBatchBytes is the largest batch body a single beacon may carry.
const DefaultMaxBatchBytes = 65536

//go:generate mockgen -source=flusher.go -destination=./mocks/flusher_mock.go -package=mocks
type Dispatcher interface {
	// Dispatch hands a batch to a one-way transport. It must not block and
	// reports nothing back.
	Dispatch(ctx context.Context, url string, blob []byte)
}

// FlushResult summarizes one flush.
type FlushResult struct {
	Batches  int
	Payloads int
}

type Flusher struct {
	cache         *SendCache
	dispatcher    Dispatcher
	maxBatchBytes int
}

func NewFlusher(cache *SendCache, dispatcher Dispatcher, maxBatchBytes int) *Flusher {
	if maxBatchBytes <= 0 {
		maxBatchBytes = DefaultMaxBatchBytes
	}
	return &Flusher{cache: cache, dispatcher: dispatcher, maxBatchBytes: maxBatchBytes}
}

// Flush drains every destination into size-bounded batches and then empties
// all queues. Each step measures the window [start, i+2): when it exceeds the
// ceiling everything before the overflowing item is dispatched and the next
// window starts at that item; at the end of the list the remaining window is
// dispatched. A single payload above the ceiling is dispatched on its own.
func (f *Flusher) Flush(ctx context.Context) FlushResult {
	var result FlushResult
	for _, destination := range f.cache.Destinations() {
		items := f.cache.Items(destination)
		n := len(items)
		start := 0
		for i := range items {
			end := min(i+2, n)
			if encodedSize(items[start:end]) > f.maxBatchBytes {
				if start < end-1 {
					f.dispatch(ctx, destination, items[start:end-1], &result)
				}
				start = end - 1
				continue
			}
			if i+1 == n {
				f.dispatch(ctx, destination, items[start:end], &result)
				start = n
			}
		}
		if start < n {
			f.dispatch(ctx, destination, items[start:n], &result)
		}
	}
	f.cache.Clear()

	if result.Batches > 0 {
		loggers.Ctx(ctx).Debug().
			Int("batches", result.Batches).
			Int("payloads", result.Payloads).
			Msg("send cache flushed")
	}
	return result
}

func (f *Flusher) dispatch(ctx context.Context, destination string, batch [][]byte, result *FlushResult) {
	blob := encodeBatch(batch)
	f.dispatcher.Dispatch(ctx, destination, blob)

	result.Batches++
	result.Payloads += len(batch)
	metricBatchesDispatchedTotal.WithLabelValues().Inc()
	metricBatchBytes.WithLabelValues().Observe(float64(len(blob)))
}

// encodedSize is the byte length of the JSON array holding items.
func encodedSize(items [][]byte) int {
	if len(items) == 0 {
		return 2
	}
	size := 2 + len(items) - 1
	for _, item := range items {
		size += len(item)
	}
	return size
}

func encodeBatch(items [][]byte) []byte {
	var buf bytes.Buffer
	buf.Grow(encodedSize(items))
	buf.WriteByte('[')
	buf.Write(bytes.Join(items, []byte{','}))
	buf.WriteByte(']')
	return buf.Bytes()
}
