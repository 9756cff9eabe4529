package environment

import (
	"fmt"
	"net/url"
	"slices"

	"auction-analytics/internal/models"
)

//go:generate mockgen -source=environment.go -destination=./mocks/environment_mock.go -package=mocks
type Environment interface {
	PageDetail() models.PageDetail
	DeviceDetail() models.DeviceDetail
	UserIDTypes() []string
	ConsentTypes() []string
}

// Info is what a host reports about its page when a session opens.
type Info struct {
	PageURL      string   `json:"pageUrl" validate:"required,url"`
	UserAgent    string   `json:"userAgent"`
	Platform     string   `json:"platform"`
	UserIDTypes  []string `json:"userIdTypes"`
	ConsentTypes []string `json:"consentTypes"`
}

// Snapshot is an immutable Environment captured once per session.
type Snapshot struct {
	page         models.PageDetail
	device       models.DeviceDetail
	userIDTypes  []string
	consentTypes []string
}

func NewSnapshot(info Info) (*Snapshot, error) {
	pageURL, err := url.Parse(info.PageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page url: %w", err)
	}

	path := pageURL.EscapedPath()
	if path == "" {
		path = "/"
	}
	search := ""
	if pageURL.RawQuery != "" {
		search = "?" + pageURL.RawQuery
	}

	device := ParseDevice(info.UserAgent)
	return &Snapshot{
		page: models.PageDetail{
			Host:   pageURL.Host,
			Path:   path,
			Search: search,
		},
		device: models.DeviceDetail{
			Platform:   info.Platform,
			DeviceType: device.Type,
			DeviceOS:   device.OS,
			Browser:    device.Browser,
		},
		userIDTypes:  nonNil(info.UserIDTypes),
		consentTypes: nonNil(info.ConsentTypes),
	}, nil
}

func (s *Snapshot) PageDetail() models.PageDetail {
	return s.page
}

func (s *Snapshot) DeviceDetail() models.DeviceDetail {
	return s.device
}

func (s *Snapshot) UserIDTypes() []string {
	return slices.Clone(s.userIDTypes)
}

func (s *Snapshot) ConsentTypes() []string {
	return slices.Clone(s.consentTypes)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return slices.Clone(values)
}
