package http

import (
	"net/http"

	"auction-analytics/internal/models"
	"auction-analytics/internal/sessions"
	"auction-analytics/internal/shared/loggers"
)

const (
	visibilityHidden  = "hidden"
	visibilityVisible = "visible"
)

// OpenSessionResponse is returned by POST /sessions.
type OpenSessionResponse struct {
	SessionID    string `json:"sessionId"`
	StorageScope string `json:"storageScope"`
}

type VisibilityRequest struct {
	State string `json:"state"`
}

type openSessionHandler struct {
	sessionService SessionService
}

func NewOpenSessionHandler(sessionService SessionService) AppHttpHandler {
	return &openSessionHandler{sessionService: sessionService}
}

// Handle processes POST /sessions.
func (h *openSessionHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req sessions.OpenRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	session, err := h.sessionService.Open(r.Context(), req)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, OpenSessionResponse{SessionID: session.ID(), StorageScope: session.Scope()})
	return nil
}

type activateSessionHandler struct {
	sessionService SessionService
}

func NewActivateSessionHandler(sessionService SessionService) AppHttpHandler {
	return &activateSessionHandler{sessionService: sessionService}
}

// Handle processes POST /sessions/{sessionId}/activate.
func (h *activateSessionHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var opts models.InitOptions
	if err := decodeJSON(r, &opts); err != nil {
		return err
	}
	if err := h.sessionService.Reactivate(r.Context(), sessionID(r), opts); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

type visibilityHandler struct {
	sessionService SessionService
}

func NewVisibilityHandler(sessionService SessionService) AppHttpHandler {
	return &visibilityHandler{sessionService: sessionService}
}

// Handle processes POST /sessions/{sessionId}/visibility. A hidden page
// flushes everything the session has queued.
func (h *visibilityHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req VisibilityRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if req.State != visibilityHidden && req.State != visibilityVisible {
		return errInvalidVisibility(req.State)
	}

	session, err := h.sessionService.Get(sessionID(r))
	if err != nil {
		return err
	}

	if req.State == visibilityHidden {
		result := session.Flush(r.Context(), sessions.FlushTriggerVisibility)
		loggers.Ctx(r.Context()).Debug().
			Int("batches", result.Batches).
			Int("payloads", result.Payloads).
			Msg("page hidden")
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
