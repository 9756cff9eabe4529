package aggregators

import (
	"errors"

	"auction-analytics/internal/shared/svcerrors"
)

const (
	codeMissingAuctionID = "AGG_1000"
)

var errAuctionIDRequired = errors.New("auctionId is required")

// errMissingAuctionID returns an error when an event cannot be attributed to an auction.
func errMissingAuctionID() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingAuctionID, "event has no auction id", errAuctionIDRequired)
}
