package delivery

import (
	"net/url"
	"strconv"
	"strings"

	"auction-analytics/internal/models"
)

const (
	DefaultHost           = "api.pbxai.com"
	DefaultScheme         = "https"
	DefaultAdapterVersion = "v2.1.0"

	PathAuction = "/analytics/auction"
	PathBidWon  = "/analytics/bidwon"
)

// Endpoint describes where payloads are reported.
type Endpoint struct {
	Scheme           string
	DefaultHost      string
	AdapterVersion   string
	FrameworkVersion string
}

// BuildURL renders the destination for a record. The query keeps a fixed key
// order: auctionTimestamp, pubxaiAnalyticsVersion, prebidVersion, pubxId.
func (e Endpoint) BuildURL(path string, record *models.AuctionRecord) string {
	host := record.InitOptions.HostName
	if host == "" {
		host = e.DefaultHost
	}

	timestamp := ""
	if record.AuctionDetail.Timestamp != nil {
		timestamp = strconv.FormatFloat(*record.AuctionDetail.Timestamp, 'f', -1, 64)
	}

	query := []string{
		"auctionTimestamp=" + escape(timestamp),
		"pubxaiAnalyticsVersion=" + escape(e.AdapterVersion),
		"prebidVersion=" + escape(e.FrameworkVersion),
		"pubxId=" + escape(record.InitOptions.PubxID),
	}

	u := url.URL{
		Scheme:   e.Scheme,
		Host:     host,
		Path:     path,
		RawQuery: strings.Join(query, "&"),
	}
	return u.String()
}

func escape(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
