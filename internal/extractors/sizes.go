package extractors

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

var sizeToken = regexp.MustCompile(`(?i)^\d+x\d+$`)

// NormalizeSizes renders a size value as comma-joined "WxH" entries. It accepts
// a "300x250,728x90" string (invalid tokens are dropped), a single [w, h] pair,
// or a list of pairs (invalid pairs become empty entries).
func NormalizeSizes(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		tokens := strings.Split(v, ",")
		kept := tokens[:0]
		for _, token := range tokens {
			if sizeToken.MatchString(token) {
				kept = append(kept, token)
			}
		}
		return strings.Join(kept, ",")
	case []any:
		if len(v) == 0 {
			return ""
		}
		if isNumberPair(v) {
			return formatPair(v)
		}
		entries := make([]string, len(v))
		for i, item := range v {
			if pair, ok := item.([]any); ok && isNumericPair(pair) {
				entries[i] = formatPair(pair)
			}
		}
		return strings.Join(entries, ",")
	default:
		return ""
	}
}

func isNumberPair(v []any) bool {
	if len(v) != 2 {
		return false
	}
	_, w := v[0].(float64)
	_, h := v[1].(float64)
	return w && h
}

func isNumericPair(v []any) bool {
	if len(v) != 2 {
		return false
	}
	for _, dim := range v {
		switch d := dim.(type) {
		case float64:
		case string:
			if _, err := cast.ToFloat64E(strings.TrimSpace(d)); err != nil {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func formatPair(v []any) string {
	return cast.ToString(v[0]) + "x" + cast.ToString(v[1])
}
