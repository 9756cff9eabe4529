package beacons

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzip"
)

const (
	CompressionNone = "none"
	CompressionGzip = "gzip"

	contentTypeBeacon = "text/json"
)

//go:generate mockgen -source=sender.go -destination=./mocks/sender_mock.go -package=mocks
type Sender interface {
	Send(ctx context.Context, beacon Beacon) error
}

type httpSender struct {
	client      *http.Client
	compression string
}

func NewHTTPSender(timeout time.Duration, compression string) Sender {
	return &httpSender{
		client:      &http.Client{Timeout: timeout},
		compression: compression,
	}
}

func (s *httpSender) Send(ctx context.Context, beacon Beacon) error {
	body := beacon.Body
	if s.compression == CompressionGzip {
		compressed, err := gzipBytes(body)
		if err != nil {
			return fmt.Errorf("failed to compress beacon: %w", err)
		}
		body = compressed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, beacon.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build beacon request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeBeacon)
	if s.compression == CompressionGzip {
		req.Header.Set("Content-Encoding", CompressionGzip)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send beacon: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("beacon rejected with status %d", resp.StatusCode)
	}
	return nil
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	if _, err := writer.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
