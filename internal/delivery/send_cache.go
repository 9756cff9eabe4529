package delivery

// SendCache maps destination URLs to serialized payloads awaiting a flush.
// Destinations keep their first-insertion order and are never removed; Clear
// only empties their lists. Not safe for concurrent use.
type SendCache struct {
	order  []string
	queues map[string][][]byte
}

func NewSendCache() *SendCache {
	return &SendCache{queues: make(map[string][][]byte)}
}

func (c *SendCache) Append(url string, payload []byte) {
	if _, ok := c.queues[url]; !ok {
		c.order = append(c.order, url)
	}
	c.queues[url] = append(c.queues[url], payload)
}

// Destinations returns every URL ever appended to, in insertion order.
func (c *SendCache) Destinations() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *SendCache) Items(url string) [][]byte {
	return c.queues[url]
}

// Pending counts payloads across all destinations.
func (c *SendCache) Pending() int {
	total := 0
	for _, items := range c.queues {
		total += len(items)
	}
	return total
}

func (c *SendCache) Clear() {
	for url := range c.queues {
		c.queues[url] = c.queues[url][:0:0]
	}
}
