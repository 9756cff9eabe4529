package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// The expected beacon counts below are derived from these values.
const (
	sessionCount       = 50
	auctionsPerSession = 20
	bidders            = 3
)

// ### End - fixed configs

type collector struct {
	auctionPayloads atomic.Int64
	winPayloads     atomic.Int64
	beacons         atomic.Int64
	invalid         atomic.Int64
}

func (c *collector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		c.invalid.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var payloads []json.RawMessage
	if err := json.Unmarshal(body, &payloads); err != nil {
		c.invalid.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	c.beacons.Add(1)
	switch {
	case strings.HasPrefix(r.URL.Path, "/analytics/auction"):
		c.auctionPayloads.Add(int64(len(payloads)))
	case strings.HasPrefix(r.URL.Path, "/analytics/bidwon"):
		c.winPayloads.Add(int64(len(payloads)))
	default:
		c.invalid.Add(1)
	}
	w.WriteHeader(http.StatusOK)
}

// main runs the e2e scenario: 001_auction_beacons
//
// The service must run with analytics.scheme=http and
// analytics.default_host=<COLLECTOR_ADDR> so its beacons reach the collector
// started here.
//
// What it tests:
//   - Session open, slot registration and event ingestion over HTTP
//   - Idempotency key handling for re-sent event batches (409)
//   - Flush on page hide and batching of beacons per destination
//   - At most one auction payload per auction and one win payload per bidWon
//
// Expected results:
//   - sessionCount*auctionsPerSession auction payloads and as many win payloads
//   - Every re-sent batch returns 409 Conflict
//   - No payload arrives at an unknown path
func main() {
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	collectorAddr := getEnv("COLLECTOR_ADDR", "localhost:9099")
	parallel := 8
	waitFor := 30 * time.Second

	fmt.Println("Starting e2e scenario: 001_auction_beacons")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("COLLECTOR_ADDR: %s\n", collectorAddr)
	fmt.Printf("SESSIONS: %d\n", sessionCount)
	fmt.Printf("AUCTIONS_PER_SESSION: %d\n", auctionsPerSession)
	fmt.Println()

	sink := &collector{}
	server := &http.Server{Addr: collectorAddr, Handler: sink, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "ERROR: collector failed: %v\n", err)
			os.Exit(1)
		}
	}()
	defer server.Close()

	client := &http.Client{Timeout: 30 * time.Second}
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error
	var conflicted atomic.Int64

	for sessionIndex := 0; sessionIndex < sessionCount; sessionIndex++ {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(sessionIndex int) {
			defer wg.Done()
			defer func() { <-workerChan }()

			dup, err := runSession(client, baseURL, sessionIndex)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("session %d: %w", sessionIndex, err))
				mu.Unlock()
				fmt.Fprintf(os.Stderr, "ERROR: session %d failed: %v\n", sessionIndex, err)
				return
			}
			conflicted.Add(int64(dup))
			fmt.Printf("Session %d completed\n", sessionIndex)
		}(sessionIndex)
	}
	wg.Wait()

	fmt.Println()
	if len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d sessions failed\n", len(errs))
		os.Exit(1)
	}

	want := int64(sessionCount * auctionsPerSession)
	deadline := time.Now().Add(waitFor)
	for time.Now().Before(deadline) {
		if sink.auctionPayloads.Load() >= want && sink.winPayloads.Load() >= want {
			break
		}
		time.Sleep(200 * time.Millisecond)
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Beacons received: %d\n", sink.beacons.Load())
	fmt.Printf("Auction payloads: %d (want %d)\n", sink.auctionPayloads.Load(), want)
	fmt.Printf("Win payloads: %d (want %d)\n", sink.winPayloads.Load(), want)
	fmt.Printf("Invalid beacons: %d\n", sink.invalid.Load())
	fmt.Printf("Conflicted request: %d (want %d)\n", conflicted.Load(), want)

	if sink.auctionPayloads.Load() != want || sink.winPayloads.Load() != want ||
		sink.invalid.Load() != 0 || conflicted.Load() != want {
		fmt.Fprintln(os.Stderr, "ERROR: unexpected results")
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

// runSession plays every auction of one page view, re-sends each event batch
// once and hides the page. It returns the number of 409 responses.
func runSession(client *http.Client, baseURL string, sessionIndex int) (int, error) {
	sessionID, err := openSession(client, baseURL, sessionIndex)
	if err != nil {
		return 0, err
	}
	base := baseURL + "/sessions/" + sessionID

	slot := `{"adUnitPath":"/1234/top","targeting":{"hb_pb":["1.50"],"pubx-seg":["a"]}}`
	if _, err := send(client, http.MethodPut, base+"/slots/div1", []byte(slot), ""); err != nil {
		return 0, err
	}

	conflicts := 0
	for auctionIndex := 0; auctionIndex < auctionsPerSession; auctionIndex++ {
		batch, err := auctionBatch(fmt.Sprintf("s%03d-a%03d", sessionIndex, auctionIndex))
		if err != nil {
			return 0, err
		}
		key := fmt.Sprintf("batch-%03d-%03d", sessionIndex, auctionIndex)
		for attempt := 0; attempt < 2; attempt++ {
			status, err := send(client, http.MethodPost, base+"/events", batch, key)
			if err != nil {
				return 0, err
			}
			if status == http.StatusConflict {
				conflicts++
			}
		}
	}

	if _, err := send(client, http.MethodPost, base+"/visibility", []byte(`{"state":"hidden"}`), ""); err != nil {
		return 0, err
	}
	return conflicts, nil
}

func openSession(client *http.Client, baseURL string, sessionIndex int) (string, error) {
	body, _ := json.Marshal(map[string]any{
		"options": map[string]any{"pubxId": "pub-e2e"},
		"environment": map[string]any{
			"pageUrl":   fmt.Sprintf("https://news.example.com/article/%d?ref=home", sessionIndex),
			"userAgent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			"platform":  "Win32",
		},
	})
	req, err := http.NewRequest(http.MethodPost, baseURL+"/sessions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("open session: HTTP %d", resp.StatusCode)
	}

	var opened struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&opened); err != nil {
		return "", fmt.Errorf("failed to decode session: %w", err)
	}
	return opened.SessionID, nil
}

func auctionBatch(auctionID string) ([]byte, error) {
	envelopes := make([]map[string]any, 0, bidders+2)
	for i := 0; i < bidders; i++ {
		envelopes = append(envelopes, map[string]any{
			"eventType": "bidResponse",
			"args": map[string]any{
				"adUnitCode": "div1",
				"auctionId":  auctionID,
				"bidder":     fmt.Sprintf("bidder%d", i),
				"cpm":        0.5 + float64(i),
				"size":       "300x250",
			},
		})
	}
	envelopes = append(envelopes,
		map[string]any{
			"eventType": "auctionEnd",
			"args": map[string]any{
				"auctionId": auctionID,
				"timestamp": time.Now().UnixMilli(),
				"adUnits": []any{map[string]any{
					"code": "div1",
					"bids": []any{map[string]any{"bidder": "bidder0", "floorData": map[string]any{"floorProvider": "PubxFloorProvider"}}},
				}},
			},
		},
		map[string]any{
			"eventType": "bidWon",
			"args": map[string]any{
				"adUnitCode": "div1",
				"auctionId":  auctionID,
				"bidder":     fmt.Sprintf("bidder%d", bidders-1),
				"cpm":        0.5 + float64(bidders-1),
				"size":       "300x250",
			},
		},
	)
	return json.Marshal(envelopes)
}

// send returns the status code. 409 is not an error.
func send(client *http.Client, method, url string, body []byte, idempotencyKey string) (int, error) {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("idempotency-key", idempotencyKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusConflict {
		return resp.StatusCode, fmt.Errorf("%s %s: HTTP %d", method, url, resp.StatusCode)
	}
	return resp.StatusCode, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
