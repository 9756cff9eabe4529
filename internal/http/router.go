package http

import (
	"net/http"

	"auction-analytics/internal/ingestors"
	"auction-analytics/internal/shared/loggers"
	"auction-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(sessionService SessionService, eventIngestor ingestors.EventIngestor, allowedOrigins []string, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, allowedOrigins, httpLogger)

	router.Post("/sessions", errorHandlingAdapter(NewOpenSessionHandler(sessionService)))
	router.Route("/sessions/{sessionId}", func(r chi.Router) {
		r.Use(mwSessionLogger)
		r.Post("/activate", errorHandlingAdapter(NewActivateSessionHandler(sessionService)))
		r.Post("/events", errorHandlingAdapter(NewIngestEventsHandler(eventIngestor)))
		r.Post("/visibility", errorHandlingAdapter(NewVisibilityHandler(sessionService)))
		r.Put("/slots/{adUnitCode}", errorHandlingAdapter(NewPutSlotHandler(sessionService)))
		r.Delete("/slots/{adUnitCode}", errorHandlingAdapter(NewDeleteSlotHandler(sessionService)))
		r.Put("/storage/{key}", errorHandlingAdapter(NewPutStorageHandler(sessionService)))
		r.Delete("/storage/{key}", errorHandlingAdapter(NewDeleteStorageHandler(sessionService)))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
