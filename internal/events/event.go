package events

import "encoding/json"

// Type is the host event name carried in the envelope's eventType field.
type Type string

const (
	TypeBidTimeout  Type = "bidTimeout"
	TypeBidResponse Type = "bidResponse"
	TypeBidRejected Type = "bidRejected"
	TypeAuctionEnd  Type = "auctionEnd"
	TypeBidWon      Type = "bidWon"
)

// Event is one auction lifecycle event. The set of implementations is closed;
// consumers switch over the concrete types.
type Event interface {
	Kind() Type
	isEvent()
}

// Bid is the raw bid payload emitted by the auction engine.
//
// Example JSON:
//
//	{
//	  "adUnitCode": "div1",
//	  "auctionId": "a1",
//	  "bidder": "appnexus",
//	  "cpm": 1.5,
//	  "size": "300x250",
//	  "params": [{"placementId": 13144370}]
//	}
type Bid struct {
	AdUnitCode        string          `json:"adUnitCode"`
	AuctionID         string          `json:"auctionId"`
	Bidder            string          `json:"bidder"`
	CPM               *float64        `json:"cpm"`
	CreativeID        json.RawMessage `json:"creativeId"`
	DealID            json.RawMessage `json:"dealId"`
	Currency          string          `json:"currency"`
	FloorData         json.RawMessage `json:"floorData"`
	MediaType         string          `json:"mediaType"`
	NetRevenue        *bool           `json:"netRevenue"`
	RequestTimestamp  *float64        `json:"requestTimestamp"`
	ResponseTimestamp *float64        `json:"responseTimestamp"`
	Status            string          `json:"status"`
	StatusMessage     string          `json:"statusMessage"`
	TimeToRespond     *float64        `json:"timeToRespond"`
	Size              json.RawMessage `json:"size"`
	TransactionID     string          `json:"transactionId"`
	BidID             string          `json:"bidId"`
	RequestID         string          `json:"requestId"`
	Params            json.RawMessage `json:"params"`
	Source            string          `json:"source"`
}

// AdUnit is the subset of an auction's ad unit the aggregator reads.
type AdUnit struct {
	Code string      `json:"code"`
	Bids []AdUnitBid `json:"bids"`
}

type AdUnitBid struct {
	Bidder    string          `json:"bidder"`
	FloorData json.RawMessage `json:"floorData"`
}

// BidderRequest keeps ortb2 raw; only a single nested path is ever read from it.
type BidderRequest struct {
	BidderCode string          `json:"bidderCode"`
	Ortb2      json.RawMessage `json:"ortb2"`
}

type BidTimeout struct {
	Bids []Bid
}

type BidResponse struct {
	Bid Bid
}

type BidRejected struct {
	Bid Bid
}

type AuctionEnd struct {
	AuctionID      string          `json:"auctionId"`
	Timestamp      *float64        `json:"timestamp"`
	AdUnits        []AdUnit        `json:"adUnits"`
	BidderRequests []BidderRequest `json:"bidderRequests"`
}

// BidWon carries the winning bid; Bid.Size holds the rendered size.
type BidWon struct {
	Bid Bid
}

// Unknown is any event the aggregator does not handle.
type Unknown struct {
	Type Type
}

func (BidTimeout) Kind() Type  { return TypeBidTimeout }
func (BidResponse) Kind() Type { return TypeBidResponse }
func (BidRejected) Kind() Type { return TypeBidRejected }
func (AuctionEnd) Kind() Type  { return TypeAuctionEnd }
func (BidWon) Kind() Type      { return TypeBidWon }
func (e Unknown) Kind() Type   { return e.Type }

func (BidTimeout) isEvent()  {}
func (BidResponse) isEvent() {}
func (BidRejected) isEvent() {}
func (AuctionEnd) isEvent()  {}
func (BidWon) isEvent()      {}
func (Unknown) isEvent()     {}
