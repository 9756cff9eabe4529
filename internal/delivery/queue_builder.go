package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"auction-analytics/internal/models"
	"auction-analytics/internal/sampling"
	"auction-analytics/internal/shared/loggers"
)

const (
	skipSampledOut   = "sampled_out"
	skipAlreadySent  = "already_sent"
	skipMissingField = "missing_field"
	skipEncodeFailed = "encode_failed"
)

var (
	auctionKeys = []string{
		models.KeyBids,
		models.KeyPageDetail,
		models.KeyDeviceDetail,
		models.KeyFloorDetail,
		models.KeyAuctionDetail,
		models.KeyUserDetail,
		models.KeyConsentDetail,
		models.KeyPmacDetail,
		models.KeyExtraData,
		models.KeyInitOptions,
	}
	winKeys = []string{
		models.KeyWinningBid,
		models.KeyPageDetail,
		models.KeyDeviceDetail,
		models.KeyFloorDetail,
		models.KeyAuctionDetail,
		models.KeyUserDetail,
		models.KeyConsentDetail,
		models.KeyPmacDetail,
		models.KeyExtraData,
		models.KeyInitOptions,
	}
)

//go:generate mockgen -source=queue_builder.go -destination=./mocks/queue_builder_mock.go -package=mocks
type QueueBuilder interface {
	// PrepareAuctionSend enqueues the auction payload at most once per auction.
	PrepareAuctionSend(ctx context.Context, record *models.AuctionRecord) bool
	// PrepareWinSend enqueues a win payload on every call that passes sampling.
	PrepareWinSend(ctx context.Context, record *models.AuctionRecord, winningBid *models.BidRecord) bool
}

type queueBuilder struct {
	cache    *SendCache
	endpoint Endpoint
}

func NewQueueBuilder(cache *SendCache, endpoint Endpoint) QueueBuilder {
	return &queueBuilder{cache: cache, endpoint: endpoint}
}

func (b *queueBuilder) PrepareAuctionSend(ctx context.Context, record *models.AuctionRecord) bool {
	auctionID := record.AuctionDetail.AuctionID
	if !sampling.ShouldSend(auctionID, record.InitOptions.Rate()) {
		b.skip(ctx, models.EventClassAuction, auctionID, skipSampledOut)
		return false
	}
	if record.WasSentAs(models.EventClassAuction) {
		b.skip(ctx, models.EventClassAuction, auctionID, skipAlreadySent)
		return false
	}

	queued := b.store(ctx, models.EventClassAuction, PathAuction, auctionKeys, record.Snapshot())
	record.MarkSentAs(models.EventClassAuction)
	return queued
}

func (b *queueBuilder) PrepareWinSend(ctx context.Context, record *models.AuctionRecord, winningBid *models.BidRecord) bool {
	auctionID := record.AuctionDetail.AuctionID
	if !sampling.ShouldSend(auctionID, record.InitOptions.Rate()) {
		b.skip(ctx, models.EventClassWin, auctionID, skipSampledOut)
		return false
	}

	snapshot := record.Snapshot()
	snapshot.WinningBid = winningBid
	return b.store(ctx, models.EventClassWin, PathBidWon, winKeys, snapshot)
}

// store serializes exactly the required keys of the snapshot and appends the
// payload to its destination queue. Any unset key skips the whole send.
func (b *queueBuilder) store(ctx context.Context, class models.EventClass, path string, keys []string, snapshot *models.AuctionRecord) bool {
	auctionID := snapshot.AuctionDetail.AuctionID

	for _, key := range keys {
		if snapshot.Field(key) == nil {
			b.skip(ctx, class, auctionID, skipMissingField)
			return false
		}
	}

	payload, err := encodePayload(snapshot, keys)
	if err != nil {
		loggers.Ctx(ctx).Error().Err(err).
			Str(loggers.FieldAuctionID, auctionID).
			Str(loggers.FieldEventClass, string(class)).
			Msg("failed to encode payload")
		b.skip(ctx, class, auctionID, skipEncodeFailed)
		return false
	}

	destination := b.endpoint.BuildURL(path, snapshot)
	b.cache.Append(destination, payload)

	metricPayloadsEnqueuedTotal.WithLabelValues(string(class)).Inc()
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldAuctionID, auctionID).
		Str(loggers.FieldEventClass, string(class)).
		Str(loggers.FieldDestination, destination).
		Int(loggers.FieldBatchBytes, len(payload)).
		Msg("payload enqueued")
	return true
}

func (b *queueBuilder) skip(ctx context.Context, class models.EventClass, auctionID, reason string) {
	metricPayloadsSkippedTotal.WithLabelValues(string(class), reason).Inc()
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldAuctionID, auctionID).
		Str(loggers.FieldEventClass, string(class)).
		Str("reason", reason).
		Msg("payload not enqueued")
}

// encodePayload writes a flat JSON object holding keys in the given order.
func encodePayload(record *models.AuctionRecord, keys []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		value, err := json.Marshal(record.Field(key))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", key, err)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		name, _ := json.Marshal(key)
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
