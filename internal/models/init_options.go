package models

// InitOptions is the activation-time configuration copied into every auction record.
type InitOptions struct {
	PubxID       string `json:"pubxId" validate:"required"`
	HostName     string `json:"hostName,omitempty" validate:"omitempty,hostname_port|hostname"`
	SamplingRate int    `json:"samplingRate,omitempty" validate:"omitempty,min=1"`
	AuctionID    string `json:"auctionId,omitempty"`
}

// Rate returns the sampling divisor, defaulting to 1.
func (o InitOptions) Rate() int {
	if o.SamplingRate < 1 {
		return 1
	}
	return o.SamplingRate
}

// ForAuction returns a copy of the options with the auction id injected.
func (o InitOptions) ForAuction(auctionID string) InitOptions {
	o.AuctionID = auctionID
	return o
}
