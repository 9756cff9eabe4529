package aggregators

import (
	"context"
	"encoding/json"
	"testing"

	"auction-analytics/internal/delivery"
	deliverymocks "auction-analytics/internal/delivery/mocks"
	"auction-analytics/internal/environment"
	"auction-analytics/internal/events"
	"auction-analytics/internal/extractors"
	"auction-analytics/internal/models"
	"auction-analytics/internal/slots"
	"auction-analytics/internal/stores"
	storemocks "auction-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	store    stores.AuctionStore
	registry *slots.Registry
	builder  *deliverymocks.MockQueueBuilder
	agg      EventAggregator
}

func newTestStore(t *testing.T, ctrl *gomock.Controller) stores.AuctionStore {
	t.Helper()
	env, err := environment.NewSnapshot(environment.Info{
		PageURL:  "https://news.example.com/sports?a=1",
		Platform: "MacIntel",
	})
	require.NoError(t, err)

	storage := storemocks.NewMockLocalStorage(ctrl)
	storage.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	return stores.NewAuctionStore(env, storage, "visitor-1", models.InitOptions{PubxID: "pub-1"})
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	store := newTestStore(t, ctrl)
	registry := slots.NewRegistry()
	builder := deliverymocks.NewMockQueueBuilder(ctrl)
	return &fixture{
		store:    store,
		registry: registry,
		builder:  builder,
		agg:      NewEventAggregator(store, extractors.NewBidExtractor(registry), builder),
	}
}

func testBid(auctionID, bidder string) events.Bid {
	cpm := 1.5
	return events.Bid{
		AdUnitCode: "div1",
		AuctionID:  auctionID,
		Bidder:     bidder,
		CPM:        &cpm,
		Size:       json.RawMessage(`"300x250"`),
		RequestID:  "req-" + bidder,
	}
}

func TestAggregate_BidEventsAppendWithBidType(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	require.Nil(t, f.agg.Aggregate(ctx, events.BidRejected{Bid: testBid("a1", "rejected")}))
	require.Nil(t, f.agg.Aggregate(ctx, events.BidResponse{Bid: testBid("a1", "valid")}))
	require.Nil(t, f.agg.Aggregate(ctx, events.BidTimeout{Bids: []events.Bid{testBid("a1", "slow1"), testBid("a1", "slow2")}}))

	record, ok := f.store.Get("a1")
	require.True(t, ok)
	require.Len(t, record.Bids, 4)

	tests := []struct {
		bidder  string
		bidType models.BidType
	}{
		{"rejected", models.BidTypeRejected},
		{"valid", models.BidTypeResponse},
		{"slow1", models.BidTypeTimeout},
		{"slow2", models.BidTypeTimeout},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.bidder, record.Bids[i].BidderCode)
		assert.Equal(t, tt.bidType, record.Bids[i].BidType)
		assert.Nil(t, record.Bids[i].WinDetail)
	}
}

func TestAggregate_TimeoutSpanningAuctions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	err := f.agg.Aggregate(context.Background(), events.BidTimeout{Bids: []events.Bid{testBid("a1", "x"), testBid("a2", "y")}})
	require.Nil(t, err)

	first, _ := f.store.Get("a1")
	second, _ := f.store.Get("a2")
	assert.Len(t, first.Bids, 1)
	assert.Len(t, second.Bids, 1)
	assert.Equal(t, 0, first.AuctionDetail.RefreshRank)
	assert.Equal(t, 1, second.AuctionDetail.RefreshRank)
}

func TestAggregate_MissingAuctionIDIsRejectedWithoutSideEffects(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	svcErr := f.agg.Aggregate(context.Background(), events.BidTimeout{Bids: []events.Bid{testBid("a1", "x"), testBid("", "y")}})

	require.NotNil(t, svcErr)
	assert.Equal(t, codeMissingAuctionID, svcErr.Code)
	assert.Equal(t, 0, f.store.Len())

	svcErr = f.agg.Aggregate(context.Background(), events.AuctionEnd{})
	require.NotNil(t, svcErr)
	svcErr = f.agg.Aggregate(context.Background(), events.BidWon{Bid: testBid("", "x")})
	require.NotNil(t, svcErr)
}

func TestAggregate_UnknownEventIsIgnored(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	assert.Nil(t, f.agg.Aggregate(context.Background(), events.Unknown{Type: "adRenderFailed"}))
	assert.Equal(t, 0, f.store.Len())
}

func TestAggregate_AuctionEnd(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	timestamp := float64(1700000000000)
	end := events.AuctionEnd{
		AuctionID: "a1",
		Timestamp: &timestamp,
		AdUnits: []events.AdUnit{
			{Code: "div0"},
			{Code: "div1", Bids: []events.AdUnitBid{{Bidder: "x", FloorData: json.RawMessage(`{}`)}}},
			{Code: "div2", Bids: []events.AdUnitBid{{Bidder: "y", FloorData: json.RawMessage(`{"floorProvider":"PubxFloorProvider","skipRate":5}`)}}},
			{Code: "div3", Bids: []events.AdUnitBid{{Bidder: "z", FloorData: json.RawMessage(`{"floorProvider":"Other"}`)}}},
		},
		BidderRequests: []events.BidderRequest{
			{BidderCode: "x"},
			{BidderCode: "y", Ortb2: json.RawMessage(`{"device":{"ext":{}}}`)},
			{BidderCode: "z", Ortb2: json.RawMessage(`{"device":{"ext":{"cdep":"treatment_1.1"}}}`)},
		},
	}

	f.builder.EXPECT().PrepareAuctionSend(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.AuctionRecord) bool {
			assert.Equal(t, "a1", record.AuctionDetail.AuctionID)
			return true
		}).Times(1)

	require.Nil(t, f.agg.Aggregate(context.Background(), end))

	record, _ := f.store.Get("a1")
	assert.Equal(t, models.FloorDetail{"floorProvider": "PubxFloorProvider", "skipRate": float64(5)}, record.FloorDetail)
	require.NotNil(t, record.DeviceDetail.Cdep)
	assert.Equal(t, "treatment_1.1", *record.DeviceDetail.Cdep)
	assert.Equal(t, []string{"div0", "div1", "div2", "div3"}, record.AuctionDetail.AdUnitCodes)
	assert.Equal(t, &timestamp, record.AuctionDetail.Timestamp)
}

func TestAggregate_AuctionEndWithoutFloorOrCdep(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.builder.EXPECT().PrepareAuctionSend(gomock.Any(), gomock.Any()).Return(true)

	require.Nil(t, f.agg.Aggregate(context.Background(), events.AuctionEnd{AuctionID: "a1"}))

	record, _ := f.store.Get("a1")
	assert.Empty(t, record.FloorDetail)
	assert.Nil(t, record.DeviceDetail.Cdep)
	assert.Equal(t, []string{}, record.AuctionDetail.AdUnitCodes)
}

func TestAggregate_BidWonDefaultsWithoutFloorDetail(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var captured *models.BidRecord
	f.builder.EXPECT().PrepareWinSend(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.AuctionRecord, bid *models.BidRecord) bool {
			captured = bid
			return true
		})

	require.Nil(t, f.agg.Aggregate(context.Background(), events.BidWon{Bid: testBid("a1", "appnexus")}))

	require.NotNil(t, captured)
	assert.Equal(t, models.BidTypeWinning, captured.BidType)
	require.NotNil(t, captured.WinDetail)
	assert.Nil(t, captured.FloorProvider)
	assert.Nil(t, captured.FloorFetchStatus)
	assert.Nil(t, captured.FloorLocation)
	assert.Nil(t, captured.FloorModelVersion)
	assert.Zero(t, captured.FloorSkipRate)
	assert.False(t, captured.IsFloorSkipped)
	assert.True(t, captured.IsWinningBid)
	assert.JSONEq(t, `"300x250"`, string(captured.RenderedSize))
	assert.Equal(t, map[string][]string{}, captured.AdServerData)

	record, _ := f.store.Get("a1")
	assert.Same(t, captured, record.WinningBid)
	assert.Empty(t, record.Bids)
}

func TestAggregate_BidWonEnrichedFromFloorAndSlot(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.registry.Register("div1", models.Slot{
		AdUnitPath: "/1234/news/top",
		Targeting: map[string][]string{
			"hb_pb":          {"1.50"},
			"hb_pb_appnexus": {"1.50"},
			"pubx-uuid":      {"u-1"},
			"other":          {"x"},
		},
	})
	f.builder.EXPECT().PrepareAuctionSend(gomock.Any(), gomock.Any()).Return(true)
	f.builder.EXPECT().PrepareWinSend(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)

	end := events.AuctionEnd{
		AuctionID: "a1",
		AdUnits: []events.AdUnit{{Code: "div1", Bids: []events.AdUnitBid{{FloorData: json.RawMessage(
			`{"floorProvider":"PubxFloorProvider","fetchStatus":"success","location":"fetch","modelVersion":"gpt-mvm_AB_0.50_dt_0.75_dwt_0.95_dnt_0.25_fm_0.50","skipRate":10,"skipped":true}`)}}}},
	}
	require.Nil(t, f.agg.Aggregate(context.Background(), end))
	require.Nil(t, f.agg.Aggregate(context.Background(), events.BidWon{Bid: testBid("a1", "appnexus")}))

	record, _ := f.store.Get("a1")
	win := record.WinningBid
	require.NotNil(t, win)
	assert.Equal(t, "PubxFloorProvider", win.FloorProvider)
	assert.Equal(t, "success", win.FloorFetchStatus)
	assert.Equal(t, "fetch", win.FloorLocation)
	assert.Equal(t, "gpt-mvm_AB_0.50_dt_0.75_dwt_0.95_dnt_0.25_fm_0.50", win.FloorModelVersion)
	assert.Equal(t, float64(10), win.FloorSkipRate)
	assert.True(t, win.IsFloorSkipped)
	assert.Equal(t, "/1234/news/top", *win.GptSlotCode)
	assert.Equal(t, map[string][]string{"hb_pb": {"1.50"}, "pubx-uuid": {"u-1"}}, win.AdServerData)
}

func TestAggregate_EndToEndPayloads(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	cache := delivery.NewSendCache()
	builder := delivery.NewQueueBuilder(cache, delivery.Endpoint{
		Scheme:           delivery.DefaultScheme,
		DefaultHost:      delivery.DefaultHost,
		AdapterVersion:   delivery.DefaultAdapterVersion,
		FrameworkVersion: "9.0.0",
	})
	store := newTestStore(t, ctrl)
	agg := NewEventAggregator(store, extractors.NewBidExtractor(slots.NewRegistry()), builder)
	ctx := context.Background()

	timestamp := float64(1700000000000)
	require.Nil(t, agg.Aggregate(ctx, events.BidResponse{Bid: testBid("a1", "appnexus")}))
	require.Nil(t, agg.Aggregate(ctx, events.AuctionEnd{AuctionID: "a1", Timestamp: &timestamp, AdUnits: []events.AdUnit{{Code: "div1"}}}))
	require.Nil(t, agg.Aggregate(ctx, events.AuctionEnd{AuctionID: "a1", Timestamp: &timestamp, AdUnits: []events.AdUnit{{Code: "div1"}}}))
	require.Nil(t, agg.Aggregate(ctx, events.BidWon{Bid: testBid("a1", "appnexus")}))
	require.Nil(t, agg.Aggregate(ctx, events.BidWon{Bid: testBid("a1", "appnexus")}))

	destinations := cache.Destinations()
	require.Len(t, destinations, 2)
	assert.Contains(t, destinations[0], delivery.PathAuction)
	assert.Contains(t, destinations[1], delivery.PathBidWon)
	assert.Len(t, cache.Items(destinations[0]), 1)
	assert.Len(t, cache.Items(destinations[1]), 2)

	var auctionPayload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(cache.Items(destinations[0])[0], &auctionPayload))
	assert.NotContains(t, auctionPayload, models.KeyWinningBid)
	assert.Contains(t, auctionPayload, models.KeyBids)
}

func TestTruthyOrNil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  any
	}{
		{"nil", nil, nil},
		{"empty string", "", nil},
		{"false", false, nil},
		{"zero", float64(0), nil},
		{"object", map[string]any{"a": 1}, map[string]any{"a": 1}},
		{"string", "fetch", "fetch"},
		{"number keeps its type", float64(5), float64(5)},
		{"true", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truthyOrNil(tt.value))
		})
	}
}
