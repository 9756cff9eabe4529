package models

import "encoding/json"

// BidRecord is the normalized view of one bid event. Optional values that the
// host did not send are omitted from the serialized record.
type BidRecord struct {
	AdUnitCode        string          `json:"adUnitCode"`
	GptSlotCode       *string         `json:"gptSlotCode"`
	AuctionID         string          `json:"auctionId"`
	BidderCode        string          `json:"bidderCode"`
	CPM               *float64        `json:"cpm,omitempty"`
	CreativeID        json.RawMessage `json:"creativeId,omitempty"`
	DealID            json.RawMessage `json:"dealId,omitempty"`
	Currency          string          `json:"currency,omitempty"`
	FloorData         json.RawMessage `json:"floorData,omitempty"`
	MediaType         string          `json:"mediaType,omitempty"`
	NetRevenue        *bool           `json:"netRevenue,omitempty"`
	RequestTimestamp  *float64        `json:"requestTimestamp,omitempty"`
	ResponseTimestamp *float64        `json:"responseTimestamp,omitempty"`
	Status            string          `json:"status,omitempty"`
	Sizes             string          `json:"sizes"`
	StatusMessage     string          `json:"statusMessage,omitempty"`
	TimeToRespond     *float64        `json:"timeToRespond,omitempty"`
	TransactionID     string          `json:"transactionId,omitempty"`
	BidID             string          `json:"bidId,omitempty"`
	PlacementID       json.RawMessage `json:"placementId"`
	Source            string          `json:"source"`
	BidType           BidType         `json:"bidType"`

	*WinDetail
}

// WinDetail carries the fields only a winning bid reports.
type WinDetail struct {
	FloorProvider     any                 `json:"floorProvider"`
	FloorFetchStatus  any                 `json:"floorFetchStatus"`
	FloorLocation     any                 `json:"floorLocation"`
	FloorModelVersion any                 `json:"floorModelVersion"`
	FloorSkipRate     float64             `json:"floorSkipRate"`
	IsFloorSkipped    bool                `json:"isFloorSkipped"`
	IsWinningBid      bool                `json:"isWinningBid"`
	RenderedSize      json.RawMessage     `json:"renderedSize,omitempty"`
	AdServerData      map[string][]string `json:"adServerData"`
}

// WithType returns a copy of the record tagged with t.
func (b BidRecord) WithType(t BidType) *BidRecord {
	b.BidType = t
	return &b
}

// Slot is the ad-server slot state registered for an ad unit code.
type Slot struct {
	AdUnitPath string              `json:"adUnitPath" validate:"required"`
	Targeting  map[string][]string `json:"targeting"`
}
