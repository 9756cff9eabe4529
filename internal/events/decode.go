package events

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

var (
	ErrMissingEventType = errors.New("missing eventType")
	ErrMissingArgs      = errors.New("missing args")
	ErrInvalidArgs      = errors.New("invalid args")
)

// Decode parses a {"eventType": ..., "args": ...} envelope. Event types that
// are not handled decode to Unknown without error.
func Decode(envelope []byte) (Event, error) {
	eventType, err := jsonparser.GetString(envelope, "eventType")
	if err != nil || eventType == "" {
		return nil, ErrMissingEventType
	}

	kind := Type(eventType)
	switch kind {
	case TypeBidTimeout, TypeBidResponse, TypeBidRejected, TypeAuctionEnd, TypeBidWon:
	default:
		return Unknown{Type: kind}, nil
	}

	args, dataType, _, err := jsonparser.Get(envelope, "args")
	if err != nil || dataType == jsonparser.Null {
		return nil, fmt.Errorf("%w: %s", ErrMissingArgs, kind)
	}

	switch kind {
	case TypeBidTimeout:
		var bids []Bid
		if err := unmarshalArgs(args, &bids); err != nil {
			return nil, err
		}
		return BidTimeout{Bids: bids}, nil
	case TypeBidResponse:
		var bid Bid
		if err := unmarshalArgs(args, &bid); err != nil {
			return nil, err
		}
		return BidResponse{Bid: bid}, nil
	case TypeBidRejected:
		var bid Bid
		if err := unmarshalArgs(args, &bid); err != nil {
			return nil, err
		}
		return BidRejected{Bid: bid}, nil
	case TypeAuctionEnd:
		var auctionEnd AuctionEnd
		if err := unmarshalArgs(args, &auctionEnd); err != nil {
			return nil, err
		}
		return auctionEnd, nil
	default:
		var bid Bid
		if err := unmarshalArgs(args, &bid); err != nil {
			return nil, err
		}
		return BidWon{Bid: bid}, nil
	}
}

func unmarshalArgs(args []byte, v any) error {
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return nil
}
