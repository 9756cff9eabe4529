package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	headerRequestID      = "x-request-id"
	headerContentType    = "content-type"
	headerIdempotencyKey = "idempotency-key"

	paramSessionID  = "sessionId"
	paramAdUnitCode = "adUnitCode"
	paramStorageKey = "key"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func contentType(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerContentType))
}

func idempotencyKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerIdempotencyKey))
}

func sessionID(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, paramSessionID))
}

func adUnitCode(r *http.Request) string {
	return chi.URLParam(r, paramAdUnitCode)
}

func storageKey(r *http.Request) string {
	return chi.URLParam(r, paramStorageKey)
}
