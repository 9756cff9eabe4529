package http

import (
	"net/http"

	"auction-analytics/internal/models"
)

type putSlotHandler struct {
	sessionService SessionService
}

func NewPutSlotHandler(sessionService SessionService) AppHttpHandler {
	return &putSlotHandler{sessionService: sessionService}
}

// Handle processes PUT /sessions/{sessionId}/slots/{adUnitCode}.
func (h *putSlotHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var slot models.Slot
	if err := decodeJSON(r, &slot); err != nil {
		return err
	}

	session, err := h.sessionService.Get(sessionID(r))
	if err != nil {
		return err
	}
	if err := session.RegisterSlot(adUnitCode(r), slot); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

type deleteSlotHandler struct {
	sessionService SessionService
}

func NewDeleteSlotHandler(sessionService SessionService) AppHttpHandler {
	return &deleteSlotHandler{sessionService: sessionService}
}

// Handle processes DELETE /sessions/{sessionId}/slots/{adUnitCode}.
func (h *deleteSlotHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	session, err := h.sessionService.Get(sessionID(r))
	if err != nil {
		return err
	}
	session.RemoveSlot(adUnitCode(r))

	w.WriteHeader(http.StatusNoContent)
	return nil
}
