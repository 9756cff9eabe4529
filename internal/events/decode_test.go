package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_KnownEvents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envelope string
		check    func(t *testing.T, event Event)
	}{
		{
			name:     "bid timeout",
			envelope: `{"eventType":"bidTimeout","args":[{"auctionId":"a1","bidder":"rubicon"},{"auctionId":"a1","bidder":"ix"}]}`,
			check: func(t *testing.T, event Event) {
				timeout, ok := event.(BidTimeout)
				require.True(t, ok)
				require.Len(t, timeout.Bids, 2)
				assert.Equal(t, "ix", timeout.Bids[1].Bidder)
			},
		},
		{
			name:     "bid response",
			envelope: `{"eventType":"bidResponse","args":{"auctionId":"a1","adUnitCode":"div1","cpm":1.5,"size":"300x250"}}`,
			check: func(t *testing.T, event Event) {
				response, ok := event.(BidResponse)
				require.True(t, ok)
				require.NotNil(t, response.Bid.CPM)
				assert.Equal(t, 1.5, *response.Bid.CPM)
				assert.JSONEq(t, `"300x250"`, string(response.Bid.Size))
			},
		},
		{
			name:     "bid rejected",
			envelope: `{"eventType":"bidRejected","args":{"auctionId":"a1","statusMessage":"Bid rejected"}}`,
			check: func(t *testing.T, event Event) {
				rejected, ok := event.(BidRejected)
				require.True(t, ok)
				assert.Equal(t, "Bid rejected", rejected.Bid.StatusMessage)
			},
		},
		{
			name: "auction end",
			envelope: `{"eventType":"auctionEnd","args":{"auctionId":"a1","timestamp":1700000000000,
				"adUnits":[{"code":"div1","bids":[{"bidder":"appnexus","floorData":{"currency":"USD"}}]}],
				"bidderRequests":[{"bidderCode":"appnexus","ortb2":{"device":{"ext":{"cdep":"label_1"}}}}]}}`,
			check: func(t *testing.T, event Event) {
				auctionEnd, ok := event.(AuctionEnd)
				require.True(t, ok)
				assert.Equal(t, "a1", auctionEnd.AuctionID)
				require.NotNil(t, auctionEnd.Timestamp)
				assert.Equal(t, float64(1700000000000), *auctionEnd.Timestamp)
				require.Len(t, auctionEnd.AdUnits, 1)
				assert.JSONEq(t, `{"currency":"USD"}`, string(auctionEnd.AdUnits[0].Bids[0].FloorData))
				require.Len(t, auctionEnd.BidderRequests, 1)
			},
		},
		{
			name:     "bid won",
			envelope: `{"eventType":"bidWon","args":{"auctionId":"a1","adUnitCode":"div1","size":"728x90"}}`,
			check: func(t *testing.T, event Event) {
				won, ok := event.(BidWon)
				require.True(t, ok)
				assert.Equal(t, TypeBidWon, won.Kind())
				assert.JSONEq(t, `"728x90"`, string(won.Bid.Size))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			event, err := Decode([]byte(tt.envelope))
			require.NoError(t, err)
			tt.check(t, event)
		})
	}
}

func TestDecode_UnknownEventType(t *testing.T) {
	t.Parallel()

	event, err := Decode([]byte(`{"eventType":"adRenderSucceeded","args":{"anything":true}}`))
	require.NoError(t, err)

	unknown, ok := event.(Unknown)
	require.True(t, ok)
	assert.Equal(t, Type("adRenderSucceeded"), unknown.Kind())
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envelope string
		expected error
	}{
		{name: "not json", envelope: `nope`, expected: ErrMissingEventType},
		{name: "missing event type", envelope: `{"args":{}}`, expected: ErrMissingEventType},
		{name: "empty event type", envelope: `{"eventType":"","args":{}}`, expected: ErrMissingEventType},
		{name: "missing args", envelope: `{"eventType":"bidResponse"}`, expected: ErrMissingArgs},
		{name: "null args", envelope: `{"eventType":"bidWon","args":null}`, expected: ErrMissingArgs},
		{name: "timeout args not array", envelope: `{"eventType":"bidTimeout","args":{"auctionId":"a1"}}`, expected: ErrInvalidArgs},
		{name: "cpm not number", envelope: `{"eventType":"bidResponse","args":{"cpm":"high"}}`, expected: ErrInvalidArgs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			event, err := Decode([]byte(tt.envelope))
			assert.Nil(t, event)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
