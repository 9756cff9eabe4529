package sessions

import (
	"context"
	"time"

	"auction-analytics/internal/delivery"
	"auction-analytics/internal/environment"
	"auction-analytics/internal/events"
	"auction-analytics/internal/models"
	"auction-analytics/internal/shared/loggers"
	"auction-analytics/internal/shared/ulid"
	"auction-analytics/internal/shared/validators"
	"auction-analytics/internal/stores"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type Config struct {
	MaxSessions   int
	IdleTTL       time.Duration
	MaxBatchBytes int
	Endpoint      delivery.Endpoint
}

// OpenRequest activates a new session.
//
// Example JSON:
//
//	{
//	  "options": {"pubxId": "pub-1", "samplingRate": 2},
//	  "environment": {
//	    "pageUrl": "https://news.example.com/sports?a=1",
//	    "userAgent": "Mozilla/5.0 ...",
//	    "platform": "MacIntel",
//	    "userIdTypes": ["pubcid"],
//	    "consentTypes": ["gdpr"]
//	  },
//	  "storageScope": "visitor-1"
//	}
type OpenRequest struct {
	Options      models.InitOptions `json:"options"`
	Environment  environment.Info   `json:"environment"`
	StorageScope string             `json:"storageScope,omitempty"`
}

// Manager owns the live sessions. Sessions idle for longer than the
// configured ttl, or pushed out by capacity, are flushed on eviction the way
// a page flushes when it is hidden.
type Manager struct {
	sessions   *expirable.LRU[string, *Session]
	storage    stores.LocalStorage
	dispatcher delivery.Dispatcher
	config     Config
	validate   *validators.Validate
	logger     loggers.Logger
}

func NewManager(config Config, storage stores.LocalStorage, dispatcher delivery.Dispatcher, logger loggers.Logger) *Manager {
	m := &Manager{
		storage:    storage,
		dispatcher: dispatcher,
		config:     config,
		validate:   validators.NewJSON(),
		logger:     logger,
	}
	m.sessions = expirable.NewLRU[string, *Session](config.MaxSessions, m.onEvict, config.IdleTTL)
	return m
}

func (m *Manager) Open(ctx context.Context, req OpenRequest) (*Session, error) {
	if err := m.validate.Struct(req); err != nil {
		return nil, errValidationFailed(err)
	}
	if req.StorageScope != "" && !stores.IsValidScope(req.StorageScope) {
		return nil, errInvalidRequest("invalid storageScope", stores.ErrInvalidScope)
	}
	env, err := environment.NewSnapshot(req.Environment)
	if err != nil {
		return nil, errInvalidRequest("invalid environment", err)
	}

	id := ulid.NewMonotonicULID()
	scope := req.StorageScope
	if scope == "" {
		scope = id
	}
	session := newSession(id, scope, env, req.Options, m.storage, m.dispatcher, m.config)
	m.sessions.Add(id, session)

	metricSessionsOpenedTotal.WithLabelValues().Inc()
	metricSessionsActive.Set(float64(m.sessions.Len()))
	loggers.Ctx(ctx).Info().
		Str(loggers.FieldSessionID, id).
		Str("storage_scope", scope).
		Str("pubx_id", req.Options.PubxID).
		Msg("session opened")
	return session, nil
}

// Get returns the session and refreshes its idle deadline.
func (m *Manager) Get(sessionID string) (*Session, error) {
	session, ok := m.sessions.Get(sessionID)
	if !ok {
		return nil, errSessionNotFound(sessionID)
	}
	m.sessions.Add(sessionID, session)
	// eviction between Get and Add leaves a closed session re-inserted
	if session.Closed() {
		m.sessions.Remove(sessionID)
		return nil, errSessionNotFound(sessionID)
	}
	return session, nil
}

// Reactivate re-runs activation on a live session with new options.
func (m *Manager) Reactivate(ctx context.Context, sessionID string, opts models.InitOptions) error {
	if err := m.validate.Struct(opts); err != nil {
		return errValidationFailed(err)
	}
	session, err := m.Get(sessionID)
	if err != nil {
		return err
	}
	session.Activate(opts)
	loggers.Ctx(ctx).Info().
		Str(loggers.FieldSessionID, sessionID).
		Str("pubx_id", opts.PubxID).
		Msg("session reactivated")
	return nil
}

// Track applies evs to the session in order.
func (m *Manager) Track(ctx context.Context, sessionID string, evs ...events.Event) (TrackResult, error) {
	session, err := m.Get(sessionID)
	if err != nil {
		return TrackResult{}, err
	}
	return session.Track(ctx, evs...), nil
}

// FlushAll flushes every live session. Sessions stay open.
func (m *Manager) FlushAll(ctx context.Context) delivery.FlushResult {
	var total delivery.FlushResult
	for _, session := range m.sessions.Values() {
		result := session.Flush(ctx, FlushTriggerShutdown)
		total.Batches += result.Batches
		total.Payloads += result.Payloads
	}
	return total
}

func (m *Manager) Len() int {
	return m.sessions.Len()
}

// onEvict runs with the cache lock held; it must not call back into m.sessions.
func (m *Manager) onEvict(sessionID string, session *Session) {
	ctx := m.logger.With().Str(loggers.FieldSessionID, sessionID).Logger().WithContext(context.Background())
	result, ok := session.close(ctx)
	if !ok {
		return
	}
	metricSessionsActive.Dec()
	loggers.Ctx(ctx).Info().
		Int("batches", result.Batches).
		Int("payloads", result.Payloads).
		Msg("session evicted")
}
