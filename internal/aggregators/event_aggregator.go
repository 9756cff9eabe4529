package aggregators

import (
	"context"

	"auction-analytics/internal/delivery"
	"auction-analytics/internal/events"
	"auction-analytics/internal/extractors"
	"auction-analytics/internal/models"
	"auction-analytics/internal/shared/loggers"
	"auction-analytics/internal/shared/metrics"
	"auction-analytics/internal/shared/svcerrors"
	"auction-analytics/internal/stores"
)

// EventAggregator folds auction lifecycle events into the session's auction
// records and triggers the reporting paths. Events must be applied in the
// order the host emitted them; callers serialize access.
type EventAggregator interface {
	Aggregate(ctx context.Context, event events.Event) *svcerrors.ServiceError
}

type eventAggregator struct {
	store     stores.AuctionStore
	extractor extractors.BidExtractor
	builder   delivery.QueueBuilder
}

func NewEventAggregator(store stores.AuctionStore, extractor extractors.BidExtractor, builder delivery.QueueBuilder) EventAggregator {
	return &eventAggregator{store: store, extractor: extractor, builder: builder}
}

func (a *eventAggregator) Aggregate(ctx context.Context, event events.Event) *svcerrors.ServiceError {
	var svcErr *svcerrors.ServiceError

	switch e := event.(type) {
	case events.BidTimeout:
		svcErr = a.appendBids(ctx, models.BidTypeTimeout, e.Bids...)
	case events.BidResponse:
		svcErr = a.appendBids(ctx, models.BidTypeResponse, e.Bid)
	case events.BidRejected:
		svcErr = a.appendBids(ctx, models.BidTypeRejected, e.Bid)
	case events.AuctionEnd:
		svcErr = a.endAuction(ctx, e)
	case events.BidWon:
		svcErr = a.recordWin(ctx, e)
	default:
		// other kinds are ignored
	}

	errorCode := metrics.ValueNoError
	if svcErr != nil {
		errorCode = svcErr.Code
	}
	metricEventsAggregatedTotal.WithLabelValues(string(event.Kind()), errorCode).Inc()
	return svcErr
}

func (a *eventAggregator) appendBids(ctx context.Context, bidType models.BidType, bids ...events.Bid) *svcerrors.ServiceError {
	for i := range bids {
		if bids[i].AuctionID == "" {
			return errMissingAuctionID()
		}
	}

	for _, bid := range bids {
		record := a.store.GetOrCreate(ctx, bid.AuctionID)
		bidRecord := a.extractor.Extract(bid)
		bidRecord.BidType = bidType
		record.Bids = append(record.Bids, bidRecord)
	}
	return nil
}

func (a *eventAggregator) endAuction(ctx context.Context, e events.AuctionEnd) *svcerrors.ServiceError {
	if e.AuctionID == "" {
		return errMissingAuctionID()
	}

	record := a.store.GetOrCreate(ctx, e.AuctionID)
	if record.FloorDetail == nil {
		record.FloorDetail = models.FloorDetail{}
	}
	mergeFirstFloorData(record.FloorDetail, e.AdUnits)
	record.DeviceDetail.Cdep = firstCdep(e.BidderRequests)

	codes := make([]string, 0, len(e.AdUnits))
	for _, adUnit := range e.AdUnits {
		codes = append(codes, adUnit.Code)
	}
	record.AuctionDetail.AdUnitCodes = codes
	record.AuctionDetail.Timestamp = e.Timestamp

	queued := a.builder.PrepareAuctionSend(ctx, record)
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldAuctionID, e.AuctionID).
		Int("bids", len(record.Bids)).
		Bool("queued", queued).
		Msg("auction ended")
	return nil
}

func (a *eventAggregator) recordWin(ctx context.Context, e events.BidWon) *svcerrors.ServiceError {
	if e.Bid.AuctionID == "" {
		return errMissingAuctionID()
	}

	record := a.store.GetOrCreate(ctx, e.Bid.AuctionID)
	winningBid := a.extractor.Extract(e.Bid)
	winningBid.BidType = models.BidTypeWinning
	winningBid.WinDetail = newWinDetail(record.FloorDetail, e.Bid.Size, a.extractor.AdServerData(winningBid.AdUnitCode))
	record.WinningBid = winningBid

	queued := a.builder.PrepareWinSend(ctx, record, winningBid)
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldAuctionID, e.Bid.AuctionID).
		Str("bidder", winningBid.BidderCode).
		Bool("queued", queued).
		Msg("bid won")
	return nil
}
