package aggregators

import (
	"encoding/json"

	"auction-analytics/internal/events"
	"auction-analytics/internal/models"

	"github.com/buger/jsonparser"
	"github.com/spf13/cast"
)

const (
	floorKeyProvider     = "floorProvider"
	floorKeyFetchStatus  = "fetchStatus"
	floorKeyLocation     = "location"
	floorKeyModelVersion = "modelVersion"
	floorKeySkipRate     = "skipRate"
	floorKeySkipped      = "skipped"
)

// mergeFirstFloorData copies the floor data of the first ad unit whose first
// bid carries a non-empty floor object into detail. Later ad units are not
// consulted. It reports whether anything was merged.
func mergeFirstFloorData(detail models.FloorDetail, adUnits []events.AdUnit) bool {
	for _, adUnit := range adUnits {
		if len(adUnit.Bids) == 0 {
			continue
		}
		floor, ok := decodeFloorData(adUnit.Bids[0].FloorData)
		if !ok {
			continue
		}
		for key, value := range floor {
			detail[key] = value
		}
		return true
	}
	return false
}

func decodeFloorData(raw json.RawMessage) (map[string]any, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var floor map[string]any
	if err := json.Unmarshal(raw, &floor); err != nil || len(floor) == 0 {
		return nil, false
	}
	return floor, true
}

// firstCdep returns ortb2.device.ext.cdep of the first bidder request that has one.
func firstCdep(requests []events.BidderRequest) *string {
	for _, request := range requests {
		if len(request.Ortb2) == 0 {
			continue
		}
		cdep, err := jsonparser.GetString(request.Ortb2, "device", "ext", "cdep")
		if err == nil && cdep != "" {
			return &cdep
		}
	}
	return nil
}

func newWinDetail(floor models.FloorDetail, renderedSize json.RawMessage, adServerData map[string][]string) *models.WinDetail {
	return &models.WinDetail{
		FloorProvider:     truthyOrNil(floor[floorKeyProvider]),
		FloorFetchStatus:  truthyOrNil(floor[floorKeyFetchStatus]),
		FloorLocation:     truthyOrNil(floor[floorKeyLocation]),
		FloorModelVersion: truthyOrNil(floor[floorKeyModelVersion]),
		FloorSkipRate:     cast.ToFloat64(floor[floorKeySkipRate]),
		IsFloorSkipped:    cast.ToBool(floor[floorKeySkipped]),
		IsWinningBid:      true,
		RenderedSize:      renderedSize,
		AdServerData:      adServerData,
	}
}

// truthyOrNil passes value through unless it is falsy (nil, false, "", 0).
func truthyOrNil(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		if !v {
			return nil
		}
	case string:
		if v == "" {
			return nil
		}
	case float64:
		if v == 0 {
			return nil
		}
	}
	return value
}
