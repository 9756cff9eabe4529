package beacons

import (
	"encoding/binary"
	"hash/fnv"
)

type PartitionedQueue[T any] struct {
	partitions []chan T
}

const (
	defaultNumPartitions = 4
	defaultBuffer        = 256
)

func NewPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions <= 0 {
		numPartitions = defaultNumPartitions
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// TryPublish enqueues msg on the partition owning partitionKey without
// blocking. It returns false when that partition is full.
func (queue *PartitionedQueue[T]) TryPublish(partitionKey string, msg T) bool {
	idx := partitionIndex(partitionKey, len(queue.partitions))
	select {
	case queue.partitions[idx] <- msg:
		return true
	default:
		return false
	}
}

// Pending is the number of buffered messages across partitions.
func (queue *PartitionedQueue[T]) Pending() int {
	total := 0
	for _, ch := range queue.partitions {
		total += len(ch)
	}
	return total
}

func (queue *PartitionedQueue[T]) partition(idx int) <-chan T {
	return queue.partitions[idx]
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
