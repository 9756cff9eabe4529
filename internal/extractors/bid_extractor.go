package extractors

import (
	"strings"

	"auction-analytics/internal/events"
	"auction-analytics/internal/models"

	"github.com/buger/jsonparser"
)

const (
	adServerKeyPrefix = "pubx-"
	sharedPricePrefix = "hb_"
	defaultSource     = "null"
)

//go:generate mockgen -source=bid_extractor.go -destination=./mocks/bid_extractor_mock.go -package=mocks
type SlotResolver interface {
	// ResolveSlot returns nil when no slot is registered for the ad unit code.
	ResolveSlot(adUnitCode string) *models.Slot
}

type BidExtractor interface {
	Extract(raw events.Bid) *models.BidRecord
	AdServerData(adUnitCode string) map[string][]string
}

type bidExtractor struct {
	slots SlotResolver
}

func NewBidExtractor(slots SlotResolver) BidExtractor {
	return &bidExtractor{slots: slots}
}

// Extract normalizes a raw bid. The bid type is left for the caller to set.
func (e *bidExtractor) Extract(raw events.Bid) *models.BidRecord {
	record := &models.BidRecord{
		AdUnitCode:        raw.AdUnitCode,
		GptSlotCode:       e.gptSlotCode(raw.AdUnitCode),
		AuctionID:         raw.AuctionID,
		BidderCode:        raw.Bidder,
		CPM:               raw.CPM,
		CreativeID:        raw.CreativeID,
		DealID:            raw.DealID,
		Currency:          raw.Currency,
		FloorData:         raw.FloorData,
		MediaType:         raw.MediaType,
		NetRevenue:        raw.NetRevenue,
		RequestTimestamp:  raw.RequestTimestamp,
		ResponseTimestamp: raw.ResponseTimestamp,
		Status:            raw.Status,
		Sizes:             NormalizeSizes(raw.Size),
		StatusMessage:     raw.StatusMessage,
		TimeToRespond:     raw.TimeToRespond,
		TransactionID:     raw.TransactionID,
		BidID:             raw.BidID,
		PlacementID:       placementID(raw.Params),
		Source:            raw.Source,
	}
	if record.BidID == "" {
		record.BidID = raw.RequestID
	}
	if record.Source == "" {
		record.Source = defaultSource
	}
	return record
}

// AdServerData returns the allow-listed targeting of the slot serving adUnitCode.
func (e *bidExtractor) AdServerData(adUnitCode string) map[string][]string {
	data := make(map[string][]string)
	slot := e.slots.ResolveSlot(adUnitCode)
	if slot == nil {
		return data
	}
	for key, values := range slot.Targeting {
		if IsAllowedAdServerKey(key) {
			data[key] = values
		}
	}
	return data
}

// IsAllowedAdServerKey accepts "pubx-" keys and "hb_" keys with exactly one underscore.
func IsAllowedAdServerKey(key string) bool {
	if strings.HasPrefix(key, adServerKeyPrefix) {
		return true
	}
	return strings.HasPrefix(key, sharedPricePrefix) && strings.Count(key, "_") == 1
}

func (e *bidExtractor) gptSlotCode(adUnitCode string) *string {
	slot := e.slots.ResolveSlot(adUnitCode)
	if slot == nil || slot.AdUnitPath == "" {
		return nil
	}
	path := slot.AdUnitPath
	return &path
}

// placementID reads params[0].placementId, keeping its JSON form.
func placementID(params []byte) []byte {
	if len(params) == 0 {
		return nil
	}
	value, dataType, _, err := jsonparser.Get(params, "[0]", "placementId")
	if err != nil {
		return nil
	}
	if dataType == jsonparser.String {
		quoted := make([]byte, 0, len(value)+2)
		quoted = append(quoted, '"')
		quoted = append(quoted, value...)
		return append(quoted, '"')
	}
	return value
}
