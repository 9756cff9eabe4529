package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	"auction-analytics/internal/environment"
	"auction-analytics/internal/models"
	"auction-analytics/internal/shared/loggers"
)

var emptyObject = json.RawMessage(`{}`)

// AuctionStore maps auction ids to their records for one session. Records are
// created on first access and kept for the lifetime of the store. It is not
// safe for concurrent use; callers serialize access.
type AuctionStore interface {
	// GetOrCreate returns the record for auctionID, building the default
	// record from the environment and local storage on first access.
	GetOrCreate(ctx context.Context, auctionID string) *models.AuctionRecord
	Get(auctionID string) (*models.AuctionRecord, bool)
	// Reset installs new init options and restarts the refresh rank at 0.
	// Existing records are kept.
	Reset(opts models.InitOptions)
	InitOptions() models.InitOptions
	Len() int
}

type auctionStore struct {
	env         environment.Environment
	storage     LocalStorage
	scope       string
	initOptions models.InitOptions
	refreshRank int
	records     map[string]*models.AuctionRecord
}

func NewAuctionStore(env environment.Environment, storage LocalStorage, scope string, opts models.InitOptions) AuctionStore {
	return &auctionStore{
		env:         env,
		storage:     storage,
		scope:       scope,
		initOptions: opts,
		records:     make(map[string]*models.AuctionRecord),
	}
}

func (s *auctionStore) GetOrCreate(ctx context.Context, auctionID string) *models.AuctionRecord {
	if record, ok := s.records[auctionID]; ok {
		return record
	}

	record := &models.AuctionRecord{
		Bids: []*models.BidRecord{},
		AuctionDetail: models.AuctionDetail{
			RefreshRank: s.refreshRank,
			AuctionID:   auctionID,
		},
		FloorDetail:   models.FloorDetail{},
		PageDetail:    s.env.PageDetail(),
		DeviceDetail:  s.env.DeviceDetail(),
		UserDetail:    models.UserDetail{UserIDTypes: s.env.UserIDTypes()},
		ConsentDetail: models.ConsentDetail{ConsentTypes: s.env.ConsentTypes()},
		PmacDetail:    s.readBlob(ctx, KeyPmac),
		ExtraData:     s.readBlob(ctx, KeyExtraData),
		InitOptions:   s.initOptions.ForAuction(auctionID),
		SendAs:        make(map[models.EventClass]bool),
	}
	s.refreshRank++
	s.records[auctionID] = record

	metricAuctionRecordsCreatedTotal.WithLabelValues().Inc()
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldAuctionID, auctionID).
		Int("refresh_rank", record.AuctionDetail.RefreshRank).
		Msg("auction record created")
	return record
}

func (s *auctionStore) Get(auctionID string) (*models.AuctionRecord, bool) {
	record, ok := s.records[auctionID]
	return record, ok
}

func (s *auctionStore) Reset(opts models.InitOptions) {
	s.initOptions = opts
	s.refreshRank = 0
}

func (s *auctionStore) InitOptions() models.InitOptions {
	return s.initOptions
}

func (s *auctionStore) Len() int {
	return len(s.records)
}

// readBlob returns the stored blob, or {} when it is missing, unreadable,
// malformed or a falsy JSON value.
func (s *auctionStore) readBlob(ctx context.Context, key string) json.RawMessage {
	logger := loggers.Ctx(ctx)

	data, err := s.storage.Read(ctx, s.scope, key)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("failed to read stored blob, using empty object")
		metricBlobFallbackTotal.WithLabelValues(key).Inc()
		return emptyObject
	}
	if data == nil {
		return emptyObject
	}
	if !json.Valid(data) {
		logger.Warn().Str("key", key).Msg("stored blob is not valid json, using empty object")
		metricBlobFallbackTotal.WithLabelValues(key).Inc()
		return emptyObject
	}
	if isFalsy(data) {
		return emptyObject
	}
	return data
}

func isFalsy(data []byte) bool {
	value := bytes.TrimSpace(data)
	switch string(value) {
	case "null", "false", `""`:
		return true
	}
	if n, err := strconv.ParseFloat(string(value), 64); err == nil {
		return n == 0
	}
	return false
}
