package sampling

import "unicode/utf16"

// Cyrb53 is the 53-bit cyrb53 string hash computed over the UTF-16 code units
// of s. Results are stable across processes and match the browser implementation.
func Cyrb53(s string, seed uint32) uint64 {
	h1 := 0xdeadbeef ^ seed
	h2 := 0x41c6ce57 ^ seed
	for _, ch := range utf16.Encode([]rune(s)) {
		h1 = (h1 ^ uint32(ch)) * 2654435761
		h2 = (h2 ^ uint32(ch)) * 1597334677
	}
	h1 = (h1^(h1>>16))*2246822507 ^ (h2^(h2>>13))*3266489909
	h2 = (h2^(h2>>16))*2246822507 ^ (h1^(h1>>13))*3266489909
	return 4294967296*uint64(2097151&h2) + uint64(h1)
}

// ShouldSend reports whether the auction is sampled in at the given rate.
// Rates below 2 always send.
func ShouldSend(auctionID string, rate int) bool {
	if rate <= 1 {
		return true
	}
	return Cyrb53(auctionID, 0)%uint64(rate) == 0
}
