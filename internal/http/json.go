package http

import (
	"encoding/json"
	"io"
	"net/http"
)

const maxJSONBodyBytes = 64 * 1024

// readBody reads at most limit bytes of the request body.
func readBody(r *http.Request, limit int) ([]byte, error) {
	if r.Body == nil {
		return nil, errInvalidBody(nil)
	}
	buf, err := io.ReadAll(io.LimitReader(r.Body, int64(limit)+1))
	if err != nil {
		return nil, errInvalidBody(err)
	}
	if len(buf) > limit {
		return nil, errBodyTooLarge()
	}
	return buf, nil
}

func decodeJSON(r *http.Request, v any) error {
	buf, err := readBody(r, maxJSONBodyBytes)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(buf, v); err != nil {
		return errInvalidBody(err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
