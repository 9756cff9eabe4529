package models

import "encoding/json"

// EventClass labels a reporting path.
type EventClass string

const (
	EventClassAuction EventClass = "auction"
	EventClassWin     EventClass = "win"
)

const (
	KeyBids          = "bids"
	KeyWinningBid    = "winningBid"
	KeyPageDetail    = "pageDetail"
	KeyDeviceDetail  = "deviceDetail"
	KeyFloorDetail   = "floorDetail"
	KeyAuctionDetail = "auctionDetail"
	KeyUserDetail    = "userDetail"
	KeyConsentDetail = "consentDetail"
	KeyPmacDetail    = "pmacDetail"
	KeyExtraData     = "extraData"
	KeyInitOptions   = "initOptions"
)

type AuctionDetail struct {
	RefreshRank int      `json:"refreshRank"`
	AuctionID   string   `json:"auctionId"`
	AdUnitCodes []string `json:"adUnitCodes,omitempty"`
	Timestamp   *float64 `json:"timestamp,omitempty"`
}

type PageDetail struct {
	Host   string `json:"host"`
	Path   string `json:"path"`
	Search string `json:"search"`
}

type DeviceDetail struct {
	Platform   string  `json:"platform"`
	DeviceType int     `json:"deviceType"`
	DeviceOS   int     `json:"deviceOS"`
	Browser    int     `json:"browser"`
	Cdep       *string `json:"cdep,omitempty"`
}

type UserDetail struct {
	UserIDTypes []string `json:"userIdTypes"`
}

type ConsentDetail struct {
	ConsentTypes []string `json:"consentTypes"`
}

// FloorDetail is the floor metadata merged in at auction end.
type FloorDetail map[string]any

// AuctionRecord aggregates everything known about one auction within a session.
// Context fields are fixed at creation; only Bids, FloorDetail,
// AuctionDetail.AdUnitCodes/Timestamp, DeviceDetail.Cdep, WinningBid and
// SendAs change afterwards.
type AuctionRecord struct {
	Bids          []*BidRecord
	AuctionDetail AuctionDetail
	FloorDetail   FloorDetail
	PageDetail    PageDetail
	DeviceDetail  DeviceDetail
	UserDetail    UserDetail
	ConsentDetail ConsentDetail
	PmacDetail    json.RawMessage
	ExtraData     json.RawMessage
	InitOptions   InitOptions
	WinningBid    *BidRecord

	SendAs map[EventClass]bool
}

// Field returns the named top-level value, or nil when it is unset.
func (r *AuctionRecord) Field(key string) any {
	switch key {
	case KeyBids:
		return r.Bids
	case KeyWinningBid:
		if r.WinningBid == nil {
			return nil
		}
		return r.WinningBid
	case KeyPageDetail:
		return r.PageDetail
	case KeyDeviceDetail:
		return r.DeviceDetail
	case KeyFloorDetail:
		return r.FloorDetail
	case KeyAuctionDetail:
		return r.AuctionDetail
	case KeyUserDetail:
		return r.UserDetail
	case KeyConsentDetail:
		return r.ConsentDetail
	case KeyPmacDetail:
		return r.PmacDetail
	case KeyExtraData:
		return r.ExtraData
	case KeyInitOptions:
		return r.InitOptions
	default:
		return nil
	}
}

// Snapshot returns a shallow copy of the record.
func (r *AuctionRecord) Snapshot() *AuctionRecord {
	cp := *r
	return &cp
}

func (r *AuctionRecord) WasSentAs(class EventClass) bool {
	return r.SendAs[class]
}

func (r *AuctionRecord) MarkSentAs(class EventClass) {
	if r.SendAs == nil {
		r.SendAs = make(map[EventClass]bool)
	}
	r.SendAs[class] = true
}
