package beacons

import "time"

// Beacon is one batch body bound for a destination URL.
type Beacon struct {
	URL        string
	Body       []byte
	EnqueuedAt time.Time
}
