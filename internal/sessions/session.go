package sessions

import (
	"context"
	"errors"
	"sync"

	"auction-analytics/internal/aggregators"
	"auction-analytics/internal/delivery"
	"auction-analytics/internal/environment"
	"auction-analytics/internal/events"
	"auction-analytics/internal/extractors"
	"auction-analytics/internal/models"
	"auction-analytics/internal/shared/loggers"
	"auction-analytics/internal/shared/validators"
	"auction-analytics/internal/slots"
	"auction-analytics/internal/stores"
)

// TrackResult reports how many events of a call were applied.
type TrackResult struct {
	Applied  int
	Rejected int
}

// Session is one adapter activation on one page. Auction state mutation and
// flushing happen under mu, so events apply in the order they arrive and a
// flush always drains a consistent cache.
type Session struct {
	id    string
	scope string

	mu         sync.Mutex
	closed     bool
	store      stores.AuctionStore
	cache      *delivery.SendCache
	aggregator aggregators.EventAggregator
	flusher    *delivery.Flusher

	registry *slots.Registry
	storage  stores.LocalStorage
	validate *validators.Validate
}

func newSession(id, scope string, env environment.Environment, opts models.InitOptions, storage stores.LocalStorage, dispatcher delivery.Dispatcher, config Config) *Session {
	registry := slots.NewRegistry()
	cache := delivery.NewSendCache()
	store := stores.NewAuctionStore(env, storage, scope, opts)
	builder := delivery.NewQueueBuilder(cache, config.Endpoint)

	return &Session{
		id:         id,
		scope:      scope,
		store:      store,
		cache:      cache,
		aggregator: aggregators.NewEventAggregator(store, extractors.NewBidExtractor(registry), builder),
		flusher:    delivery.NewFlusher(cache, dispatcher, config.MaxBatchBytes),
		registry:   registry,
		storage:    storage,
		validate:   validators.NewJSON(),
	}
}

func (s *Session) ID() string { return s.id }

// Scope names the local storage area the session reads blobs from.
func (s *Session) Scope() string { return s.scope }

// Activate installs new init options and restarts the refresh rank.
// Auction records already tracked are kept.
func (s *Session) Activate(opts models.InitOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Reset(opts)
}

func (s *Session) InitOptions() models.InitOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.InitOptions()
}

// Track applies evs in order. Events the aggregator rejects are logged and
// skipped; the rest still apply. Events reaching a session that was already
// evicted are flushed right away.
func (s *Session) Track(ctx context.Context, evs ...events.Event) TrackResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result TrackResult
	for i, event := range evs {
		if svcErr := s.aggregator.Aggregate(ctx, event); svcErr != nil {
			result.Rejected++
			metricEventsTrackedTotal.WithLabelValues("rejected").Inc()
			loggers.Ctx(ctx).Warn().Err(svcErr).
				Str(loggers.FieldEventType, string(event.Kind())).
				Int("index", i).
				Msg("event rejected")
			continue
		}
		result.Applied++
		metricEventsTrackedTotal.WithLabelValues("applied").Inc()
	}
	if s.closed && result.Applied > 0 {
		s.flushLocked(ctx, FlushTriggerEviction)
	}
	return result
}

// Flush dispatches everything queued and empties the send cache.
func (s *Session) Flush(ctx context.Context, trigger string) delivery.FlushResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked(ctx, trigger)
}

// close flushes the session one last time. It reports false when the session
// was already closed.
func (s *Session) close(ctx context.Context) (delivery.FlushResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return delivery.FlushResult{}, false
	}
	s.closed = true
	return s.flushLocked(ctx, FlushTriggerEviction), true
}

// Closed reports whether the session was evicted.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) flushLocked(ctx context.Context, trigger string) delivery.FlushResult {
	result := s.flusher.Flush(ctx)
	metricSessionFlushesTotal.WithLabelValues(trigger).Inc()
	if result.Payloads > 0 {
		loggers.Ctx(ctx).Debug().
			Str(loggers.FieldSessionID, s.id).
			Str("trigger", trigger).
			Int("batches", result.Batches).
			Int("payloads", result.Payloads).
			Msg("session flushed")
	}
	return result
}

// Pending is the number of payloads waiting for the next flush.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Pending()
}

// Auctions is the number of auction records tracked so far.
func (s *Session) Auctions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}

// Auction returns the record of auctionID, if tracked.
func (s *Session) Auction(auctionID string) (*models.AuctionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(auctionID)
}

func (s *Session) RegisterSlot(adUnitCode string, slot models.Slot) error {
	if adUnitCode == "" {
		return errInvalidRequest("adUnitCode is required", nil)
	}
	if err := s.validate.Struct(slot); err != nil {
		return errInvalidSlot(err)
	}
	s.registry.Register(adUnitCode, slot)
	return nil
}

func (s *Session) RemoveSlot(adUnitCode string) {
	s.registry.Remove(adUnitCode)
}

// WriteStorage stores a JSON blob in the session's storage scope. Records
// created afterwards read it.
func (s *Session) WriteStorage(ctx context.Context, key string, blob []byte) error {
	if err := s.storage.Write(ctx, s.scope, key, blob); err != nil {
		return storageError(err)
	}
	return nil
}

func (s *Session) RemoveStorage(ctx context.Context, key string) error {
	if err := s.storage.Remove(ctx, s.scope, key); err != nil {
		return storageError(err)
	}
	return nil
}

func storageError(err error) error {
	switch {
	case errors.Is(err, stores.ErrInvalidBlobKey), errors.Is(err, stores.ErrInvalidScope):
		return errInvalidStorageKey(err)
	case errors.Is(err, stores.ErrInvalidBlob):
		return errInvalidBlob(err)
	case errors.Is(err, stores.ErrBlobTooLarge):
		return errBlobTooLarge()
	default:
		return errInternalStorageFailed(err)
	}
}
