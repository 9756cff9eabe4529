package beacons

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"auction-analytics/internal/shared/loggers"
	"auction-analytics/internal/shared/svcerrors"
	"auction-analytics/internal/shared/ulid"

	"github.com/benbjohnson/clock"
)

const (
	errorCodeSendFailed  = "BCN_1000"
	errorCodeDrainCutoff = "BCN_1001"
	errorCodeNone        = ""
)

type Consumer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

type consumer struct {
	queue  *PartitionedQueue[Beacon]
	sender Sender
	clock  clock.Clock

	wg        sync.WaitGroup
	runCtx    context.Context
	cancelRun context.CancelFunc

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewConsumer(queue *PartitionedQueue[Beacon], sender Sender, clk clock.Clock, logger loggers.Logger) Consumer {
	return &consumer{
		queue:  queue,
		sender: sender,
		clock:  clk,
		stopCh: make(chan struct{}),
		logger: logger,
	}
}

// Start spawns one worker per partition. A partition holds every beacon of the
// destinations hashed onto it, so a destination's batches go out in order.
func (c *consumer) Start(ctx context.Context) {
	c.runCtx, c.cancelRun = context.WithCancel(ctx)
	for partitionIndex := 0; partitionIndex < c.queue.PartitionCount(); partitionIndex++ {
		ch := c.queue.partition(partitionIndex)
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.runPartitionWorker(c.runCtx, partitionIndex, ch)
		}()
	}
}

// Stop signals the workers, lets them send whatever is already buffered and
// waits for them to exit. Once ctx is done, in-flight sends are cancelled and
// beacons still buffered are left undelivered.
func (c *consumer) Stop(ctx context.Context) {
	c.stopOnce.Do(func() { close(c.stopCh) })

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		c.logger.Warn().Err(ctx.Err()).Msg("beacon drain cut short")
		c.cancel()
		<-done
	}
	c.cancel()
}

func (c *consumer) cancel() {
	if c.cancelRun != nil {
		c.cancelRun()
	}
}

func (c *consumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan Beacon) {
	for {
		if ctx.Err() != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-c.stopCh:
			c.drain(ctx, partitionIndex, ch)
			return
		case beacon := <-ch:
			c.handle(ctx, partitionIndex, beacon)
		}
	}
}

func (c *consumer) drain(ctx context.Context, partitionIndex int, ch <-chan Beacon) {
	for {
		if ctx.Err() != nil {
			if left := len(ch); left > 0 {
				metricBeaconsSentTotal.WithLabelValues(errorCodeDrainCutoff).Add(float64(left))
				c.logger.Warn().
					Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
					Int("undelivered", left).
					Msg("beacons left undelivered at shutdown")
			}
			return
		}
		select {
		case beacon := <-ch:
			c.handle(ctx, partitionIndex, beacon)
		default:
			return
		}
	}
}

func (c *consumer) handle(ctx context.Context, partitionIndex int, beacon Beacon) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("beacon worker panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricBeaconsSentTotal.WithLabelValues(svcErr.Code).Inc()
		}
	}()

	ctx = c.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldDestination, beacon.URL).
		Logger().WithContext(ctx)

	started := c.clock.Now()
	metricBeaconQueueWaitSeconds.Observe(started.Sub(beacon.EnqueuedAt).Seconds())

	err := c.sender.Send(ctx, beacon)
	metricBeaconSendSeconds.Observe(c.clock.Since(started).Seconds())
	if err != nil {
		// one-way delivery: failures are never retried
		metricBeaconsSentTotal.WithLabelValues(errorCodeSendFailed).Inc()
		loggers.Ctx(ctx).Warn().Err(err).
			Int(loggers.FieldBatchBytes, len(beacon.Body)).
			Msg("beacon delivery failed")
		return
	}

	metricBeaconsSentTotal.WithLabelValues(errorCodeNone).Inc()
	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldBatchBytes, len(beacon.Body)).
		Msg("beacon delivered")
}
