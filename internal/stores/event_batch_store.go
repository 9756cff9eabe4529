package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"auction-analytics/internal/shared/filestorages"
)

var (
	ErrEventBatchAlreadyExist = errors.New("event batch already exists")
)

// EventBatchStore keeps a receipt for every event batch accepted under an
// idempotency key. Put is create-if-not-exists: when a host retries a batch
// the second Put fails with ErrEventBatchAlreadyExist and the batch is not
// applied twice.
//
//go:generate mockgen -source=event_batch_store.go -destination=./mocks/event_batch_store_mock.go -package=mocks
type EventBatchStore interface {
	Put(ctx context.Context, sessionID, batchID string, raw []byte) error
}

type eventBatchStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewEventBatchStore(fileStorage filestorages.FileStorage) EventBatchStore {
	return &eventBatchStore{fileStorage: fileStorage, dir: "event-batches"}
}

func (s *eventBatchStore) Put(ctx context.Context, sessionID, batchID string, raw []byte) error {
	if !isSafeSegment(sessionID) || !isSafeSegment(batchID) {
		return ErrInvalidBlobKey
	}
	key := fmt.Sprintf("%s/%s/%s.json", s.dir, sessionID, batchID)

	_, err := s.fileStorage.Put(ctx, key, bytes.NewReader(raw), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrEventBatchAlreadyExist
		}
		return fmt.Errorf("failed to put event batch: %w", err)
	}
	return nil
}
