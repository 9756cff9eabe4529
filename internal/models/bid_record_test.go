package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBidRecord_JSON_NonWinningOmitsWinDetail(t *testing.T) {
	t.Parallel()

	cpm := 1.5
	record := BidRecord{
		AdUnitCode: "div1",
		AuctionID:  "a1",
		BidderCode: "appnexus",
		CPM:        &cpm,
		Sizes:      "300x250",
		Source:     "null",
		BidType:    BidTypeResponse,
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["gptSlotCode"])
	assert.Contains(t, decoded, "gptSlotCode")
	assert.Contains(t, decoded, "placementId")
	assert.Equal(t, 1.5, decoded["cpm"])
	assert.Equal(t, float64(2), decoded["bidType"])
	assert.NotContains(t, decoded, "isWinningBid")
	assert.NotContains(t, decoded, "floorSkipRate")
	assert.NotContains(t, decoded, "adServerData")
}

func TestBidRecord_JSON_WinningIncludesWinDetail(t *testing.T) {
	t.Parallel()

	record := BidRecord{
		AuctionID: "a1",
		BidType:   BidTypeWinning,
		WinDetail: &WinDetail{
			FloorProvider: "pubx",
			FloorLocation: float64(3),
			IsWinningBid:  true,
			RenderedSize:  json.RawMessage(`"300x250"`),
			AdServerData:  map[string][]string{"hb_pb": {"1.50"}},
		},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "pubx", decoded["floorProvider"])
	assert.Nil(t, decoded["floorFetchStatus"])
	assert.Equal(t, float64(3), decoded["floorLocation"])
	assert.Contains(t, decoded, "floorModelVersion")
	assert.Equal(t, float64(0), decoded["floorSkipRate"])
	assert.Equal(t, false, decoded["isFloorSkipped"])
	assert.Equal(t, true, decoded["isWinningBid"])
	assert.Equal(t, "300x250", decoded["renderedSize"])
	assert.Equal(t, map[string]any{"hb_pb": []any{"1.50"}}, decoded["adServerData"])
}

func TestBidRecord_WithType(t *testing.T) {
	t.Parallel()

	base := BidRecord{AuctionID: "a1"}
	tagged := base.WithType(BidTypeTimeout)

	assert.Equal(t, BidTypeTimeout, tagged.BidType)
	assert.Equal(t, BidType(0), base.BidType)
}

func TestBidType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bidType  BidType
		expected string
	}{
		{BidTypeRejected, "rejected"},
		{BidTypeResponse, "response"},
		{BidTypeTimeout, "timeout"},
		{BidTypeWinning, "winning"},
		{BidType(9), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.bidType.String())
		})
	}
}
