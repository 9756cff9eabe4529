package ingestors_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"auction-analytics/internal/events"
	"auction-analytics/internal/ingestors"
	ingestormocks "auction-analytics/internal/ingestors/mocks"
	"auction-analytics/internal/sessions"
	"auction-analytics/internal/shared/svcerrors"
	"auction-analytics/internal/stores"
	storemocks "auction-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validBatch = `[
	{"eventType":"bidResponse","args":{"adUnitCode":"div1","auctionId":"a1","bidder":"appnexus","cpm":1.5}},
	{"eventType":"bidResponse"},
	{"eventType":"auctionEnd","args":{"auctionId":"a1","timestamp":1700000000000,"adUnits":[{"code":"div1"}]}},
	{"eventType":"adRenderSucceeded","args":{}},
	{"args":{}}
]`

func newService(t *testing.T) (ingestors.EventIngestor, *ingestormocks.MockSessionTracker, *storemocks.MockEventBatchStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tracker := ingestormocks.NewMockSessionTracker(ctrl)
	batchStore := storemocks.NewMockEventBatchStore(ctrl)
	return ingestors.NewEventIngestor(tracker, batchStore), tracker, batchStore
}

func expectLiveSession(tracker *ingestormocks.MockSessionTracker, sessionID string) *gomock.Call {
	return tracker.EXPECT().Get(sessionID).Return(nil, nil)
}

func requireServiceError(t *testing.T, err error, code string, status int) {
	t.Helper()
	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, code, svcErr.Code)
	assert.Equal(t, status, svcErr.HttpStatusCode)
}

func TestIngestEvents_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		sessionID   string
		contentType string
		body        string
		code        string
		status      int
	}{
		{"unsupported content type", "s1", "text/xml", validBatch, "ING_1003", http.StatusUnsupportedMediaType},
		{"missing session id", "", "application/json", validBatch, "ING_1000", http.StatusBadRequest},
		{"invalid json", "s1", "application/json", `{invalid json}`, "ING_1000", http.StatusBadRequest},
		{"object instead of array", "s1", "application/json", `{"eventType":"bidWon"}`, "ING_1000", http.StatusBadRequest},
		{"empty array", "s1", "application/json", `[]`, "ING_1000", http.StatusBadRequest},
		{"null body", "s1", "application/json; charset=utf-8", `null`, "ING_1000", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, _, _ := newService(t)
			result, err := service.IngestEvents(context.Background(), tt.sessionID, "", tt.contentType, strings.NewReader(tt.body))

			requireServiceError(t, err, tt.code, tt.status)
			assert.Nil(t, result, "expected nil result on error")
		})
	}
}

func TestIngestEvents_BatchTooLarge(t *testing.T) {
	t.Parallel()

	service, _, _ := newService(t)
	body := bytes.Repeat([]byte(" "), ingestors.MaxBatchBytes+1)

	result, err := service.IngestEvents(context.Background(), "s1", "", "application/json", bytes.NewReader(body))

	requireServiceError(t, err, "ING_1002", http.StatusRequestEntityTooLarge)
	assert.Nil(t, result)
}

func TestIngestEvents_Success_SkipsUndecodableEvents(t *testing.T) {
	t.Parallel()

	service, tracker, _ := newService(t)
	expectLiveSession(tracker, "s1")

	var tracked []events.Event
	tracker.EXPECT().
		Track(gomock.Any(), "s1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, evs ...events.Event) (sessions.TrackResult, error) {
			tracked = evs
			return sessions.TrackResult{Applied: len(evs)}, nil
		})

	result, err := service.IngestEvents(context.Background(), "s1", "", "application/json", strings.NewReader(validBatch))

	require.NoError(t, err)
	assert.Equal(t, &ingestors.IngestResult{Accepted: 3, Skipped: 2}, result)
	require.Len(t, tracked, 3)
	assert.Equal(t, events.TypeBidResponse, tracked[0].Kind())
	assert.Equal(t, events.TypeAuctionEnd, tracked[1].Kind())
	assert.Equal(t, events.Type("adRenderSucceeded"), tracked[2].Kind())
}

func TestIngestEvents_RejectedEventsCountAsSkipped(t *testing.T) {
	t.Parallel()

	service, tracker, _ := newService(t)
	expectLiveSession(tracker, "s1")
	tracker.EXPECT().
		Track(gomock.Any(), "s1", gomock.Any()).
		Return(sessions.TrackResult{Applied: 2, Rejected: 1}, nil)

	result, err := service.IngestEvents(context.Background(), "s1", "", "application/json", strings.NewReader(validBatch))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, 3, result.Skipped)
}

func TestIngestEvents_SessionNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		idempotencyKey string
	}{
		{"without idempotency key", ""},
		{"no receipt is written", "batch-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, tracker, batchStore := newService(t)
			notFound := svcerrors.NewNotFoundError("SES_1001", "session not found", nil)
			tracker.EXPECT().Get("missing").Return(nil, notFound)
			batchStore.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			tracker.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			result, err := service.IngestEvents(context.Background(), "missing", tt.idempotencyKey, "application/json", strings.NewReader(validBatch))

			requireServiceError(t, err, "SES_1001", http.StatusNotFound)
			assert.Nil(t, result)
		})
	}
}

func TestIngestEvents_SessionGoneAfterReceipt(t *testing.T) {
	t.Parallel()

	service, tracker, batchStore := newService(t)
	notFound := svcerrors.NewNotFoundError("SES_1001", "session not found", nil)
	gomock.InOrder(
		expectLiveSession(tracker, "s1"),
		batchStore.EXPECT().Put(gomock.Any(), "s1", "batch-1", gomock.Any()).Return(nil),
		tracker.EXPECT().Track(gomock.Any(), "s1", gomock.Any()).Return(sessions.TrackResult{}, notFound),
	)

	_, err := service.IngestEvents(context.Background(), "s1", "batch-1", "application/json", strings.NewReader(validBatch))

	requireServiceError(t, err, "SES_1001", http.StatusNotFound)
}

func TestIngestEvents_IdempotencyKey(t *testing.T) {
	t.Parallel()

	t.Run("stored then tracked", func(t *testing.T) {
		t.Parallel()

		service, tracker, batchStore := newService(t)
		gomock.InOrder(
			expectLiveSession(tracker, "s1"),
			batchStore.EXPECT().Put(gomock.Any(), "s1", "batch-1", []byte(validBatch)).Return(nil),
			tracker.EXPECT().Track(gomock.Any(), "s1", gomock.Any()).Return(sessions.TrackResult{Applied: 3}, nil),
		)

		result, err := service.IngestEvents(context.Background(), "s1", "  batch-1 ", "application/json", strings.NewReader(validBatch))

		require.NoError(t, err)
		assert.Equal(t, "batch-1", result.BatchID)
	})

	t.Run("duplicate is a conflict", func(t *testing.T) {
		t.Parallel()

		service, tracker, batchStore := newService(t)
		expectLiveSession(tracker, "s1")
		batchStore.EXPECT().Put(gomock.Any(), "s1", "batch-1", gomock.Any()).Return(stores.ErrEventBatchAlreadyExist)
		tracker.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		result, err := service.IngestEvents(context.Background(), "s1", "batch-1", "application/json", strings.NewReader(validBatch))

		requireServiceError(t, err, "ING_1001", http.StatusConflict)
		assert.Nil(t, result)
	})

	t.Run("invalid key", func(t *testing.T) {
		t.Parallel()

		service, tracker, batchStore := newService(t)
		expectLiveSession(tracker, "s1")
		batchStore.EXPECT().Put(gomock.Any(), "s1", "a/b", gomock.Any()).Return(stores.ErrInvalidBlobKey)

		_, err := service.IngestEvents(context.Background(), "s1", "a/b", "application/json", strings.NewReader(validBatch))

		requireServiceError(t, err, "ING_1000", http.StatusBadRequest)
	})

	t.Run("store failure is internal", func(t *testing.T) {
		t.Parallel()

		service, tracker, batchStore := newService(t)
		expectLiveSession(tracker, "s1")
		batchStore.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := service.IngestEvents(context.Background(), "s1", "batch-1", "application/json", strings.NewReader(validBatch))

		requireServiceError(t, err, "ING_9000", http.StatusInternalServerError)
	})
}
