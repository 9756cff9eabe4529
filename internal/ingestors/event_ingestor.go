package ingestors

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"auction-analytics/internal/events"
	"auction-analytics/internal/sessions"
	"auction-analytics/internal/shared/loggers"
	"auction-analytics/internal/shared/metrics"
	"auction-analytics/internal/shared/svcerrors"
	"auction-analytics/internal/stores"
)

const (
	MaxBatchBytes = 1024 * 1024

	FormatJSON = "json"
)

// IngestResult represents the result of an event batch ingestion.
type IngestResult struct {
	BatchID  string
	Accepted int
	Skipped  int
}

//go:generate mockgen -source=event_ingestor.go -destination=./mocks/event_ingestor_mock.go -package=mocks
type SessionTracker interface {
	Get(sessionID string) (*sessions.Session, error)
	Track(ctx context.Context, sessionID string, evs ...events.Event) (sessions.TrackResult, error)
}

type EventIngestor interface {
	// IngestEvents applies a JSON array of event envelopes to a session, in
	// order. Envelopes that cannot be decoded are skipped and counted.
	IngestEvents(ctx context.Context, sessionID string, idempotencyKey string, contentType string, r io.Reader) (*IngestResult, error)
}

type eventIngestor struct {
	tracker    SessionTracker
	batchStore stores.EventBatchStore
}

func NewEventIngestor(tracker SessionTracker, batchStore stores.EventBatchStore) EventIngestor {
	return &eventIngestor{tracker: tracker, batchStore: batchStore}
}

func (s *eventIngestor) IngestEvents(ctx context.Context, sessionID string, idempotencyKey string, contentType string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting events for session ID: %s, idempotency key: %s, content type: %s", sessionID, idempotencyKey, contentType)

	buf, envelopes, err := s.validateBatch(sessionID, contentType, r)
	if err != nil {
		return nil, s.fail(err)
	}

	// an unknown session must not leave a receipt behind
	if _, err := s.tracker.Get(sessionID); err != nil {
		return nil, s.fail(err)
	}

	batchID := strings.TrimSpace(idempotencyKey)
	if batchID != "" {
		if err := s.batchStore.Put(ctx, sessionID, batchID, buf); err != nil {
			switch {
			case errors.Is(err, stores.ErrEventBatchAlreadyExist):
				return nil, s.fail(errEventBatchAlreadyProcessed(err))
			case errors.Is(err, stores.ErrInvalidBlobKey):
				return nil, s.fail(errValidationFailed("invalid idempotency key", err))
			default:
				return nil, s.fail(errInternalEventBatchStoreFailed(err))
			}
		}
	}

	decoded := make([]events.Event, 0, len(envelopes))
	skipped := 0
	for i, envelope := range envelopes {
		event, err := events.Decode(envelope)
		if err != nil {
			skipped++
			logger.Warn().Err(err).Int("index", i).Msg("skipping undecodable event")
			continue
		}
		decoded = append(decoded, event)
	}

	tracked, err := s.tracker.Track(ctx, sessionID, decoded...)
	if err != nil {
		return nil, s.fail(err)
	}
	skipped += tracked.Rejected

	metricEventsIngestedTotal.WithLabelValues("accepted").Add(float64(tracked.Applied))
	metricEventsIngestedTotal.WithLabelValues("skipped").Add(float64(skipped))
	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &IngestResult{BatchID: batchID, Accepted: tracked.Applied, Skipped: skipped}, nil
}

func (s *eventIngestor) fail(err error) error {
	code := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricBatchIngestedTotal.WithLabelValues(code).Inc()
	return err
}

func (s *eventIngestor) validateBatch(sessionID string, contentType string, r io.Reader) ([]byte, []json.RawMessage, error) {
	if sessionID == "" {
		return nil, nil, errValidationFailed("sessionID is required", nil)
	}
	if !strings.Contains(strings.ToLower(contentType), FormatJSON) {
		return nil, nil, errUnsupportedMediaType(contentType)
	}
	if r == nil {
		return nil, nil, errValidationFailed("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, MaxBatchBytes+1))
	if err != nil {
		return nil, nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > MaxBatchBytes {
		return nil, nil, errBatchTooLarge(MaxBatchBytes)
	}

	var envelopes []json.RawMessage
	if err := json.Unmarshal(buf, &envelopes); err != nil {
		return nil, nil, errValidationFailed("body must be a json array of events", err)
	}
	if len(envelopes) == 0 {
		return nil, nil, errValidationFailed("events cannot be empty", nil)
	}
	return buf, envelopes, nil
}
