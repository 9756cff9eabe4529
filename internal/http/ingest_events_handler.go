package http

import (
	"net/http"

	"auction-analytics/internal/ingestors"
)

// IngestEventsResponse is returned by POST /sessions/{sessionId}/events.
type IngestEventsResponse struct {
	BatchID  string `json:"batchId,omitempty"`
	Accepted int    `json:"accepted"`
	Skipped  int    `json:"skipped"`
}

type ingestEventsHandler struct {
	eventIngestor ingestors.EventIngestor
}

func NewIngestEventsHandler(eventIngestor ingestors.EventIngestor) AppHttpHandler {
	return &ingestEventsHandler{eventIngestor: eventIngestor}
}

// Handle processes POST /sessions/{sessionId}/events.
func (h *ingestEventsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.eventIngestor.IngestEvents(r.Context(), sessionID(r), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusAccepted, IngestEventsResponse{
		BatchID:  result.BatchID,
		Accepted: result.Accepted,
		Skipped:  result.Skipped,
	})
	return nil
}
