package models

// BidType tags the disposition of a bid inside an auction record.
type BidType int

const (
	BidTypeRejected BidType = 1
	BidTypeResponse BidType = 2
	BidTypeTimeout  BidType = 3
	BidTypeWinning  BidType = 4
)

func (t BidType) String() string {
	switch t {
	case BidTypeRejected:
		return "rejected"
	case BidTypeResponse:
		return "response"
	case BidTypeTimeout:
		return "timeout"
	case BidTypeWinning:
		return "winning"
	default:
		return "unknown"
	}
}
