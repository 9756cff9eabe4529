package http

import (
	"auction-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidBody       = "HTTP_1000"
	codeInvalidVisibility = "HTTP_1001"
	codeBodyTooLarge      = "HTTP_1002"
)

func errInvalidBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidBody, "request body must be valid json", cause)
}

func errInvalidVisibility(state string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidVisibility, "unknown visibility state: "+state, nil)
}

func errBodyTooLarge() *svcerrors.ServiceError {
	return svcerrors.NewPayloadTooLargeError(codeBodyTooLarge, "request body too large")
}
