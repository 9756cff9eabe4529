package http

import (
	"net/http"

	"auction-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter carries what inner handlers learn about a request (the
// session it addressed and the service error it failed with) back out to the
// logging and metrics middlewares.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	sessionID string
	svcError  *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) SetSessionID(sessionID string) {
	w.sessionID = sessionID
}

func (w *appResponseWriter) SessionID() string {
	return w.sessionID
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

func (w *appResponseWriter) ErrorCategory() string {
	if w.svcError != nil {
		return w.svcError.Category
	}
	return ""
}

// StatusOrOK reports 200 for handlers that wrote a body without a header.
func (w *appResponseWriter) StatusOrOK() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
