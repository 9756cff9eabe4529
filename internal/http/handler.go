package http

import (
	"context"
	"net/http"

	"auction-analytics/internal/models"
	"auction-analytics/internal/sessions"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// SessionService is the session lifecycle surface the handlers use.
type SessionService interface {
	Open(ctx context.Context, req sessions.OpenRequest) (*sessions.Session, error)
	Get(sessionID string) (*sessions.Session, error)
	Reactivate(ctx context.Context, sessionID string, opts models.InitOptions) error
}
