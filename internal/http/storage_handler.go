package http

import (
	"net/http"
)

const maxStorageBodyBytes = 64 * 1024

type putStorageHandler struct {
	sessionService SessionService
}

func NewPutStorageHandler(sessionService SessionService) AppHttpHandler {
	return &putStorageHandler{sessionService: sessionService}
}

// Handle processes PUT /sessions/{sessionId}/storage/{key}. The body is stored
// as-is and must be JSON.
func (h *putStorageHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	session, err := h.sessionService.Get(sessionID(r))
	if err != nil {
		return err
	}
	blob, err := readBody(r, maxStorageBodyBytes)
	if err != nil {
		return err
	}
	if err := session.WriteStorage(r.Context(), storageKey(r), blob); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

type deleteStorageHandler struct {
	sessionService SessionService
}

func NewDeleteStorageHandler(sessionService SessionService) AppHttpHandler {
	return &deleteStorageHandler{sessionService: sessionService}
}

// Handle processes DELETE /sessions/{sessionId}/storage/{key}.
func (h *deleteStorageHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	session, err := h.sessionService.Get(sessionID(r))
	if err != nil {
		return err
	}
	if err := session.RemoveStorage(r.Context(), storageKey(r)); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
