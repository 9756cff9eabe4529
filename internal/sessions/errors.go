package sessions

import (
	"fmt"

	"auction-analytics/internal/shared/svcerrors"
	"auction-analytics/internal/shared/validators"
)

const (
	codeInvalidRequest    = "SES_1000"
	codeSessionNotFound   = "SES_1001"
	codeInvalidStorageKey = "SES_1002"
	codeInvalidBlob       = "SES_1003"
	codeBlobTooLarge      = "SES_1004"
	codeInvalidSlot       = "SES_1005"

	codeInternalStorageFailed = "SES_9000"
)

func errInvalidRequest(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequest, msg, cause)
}

// errValidationFailed flattens validator output into the client message.
func errValidationFailed(cause error) *svcerrors.ServiceError {
	return errInvalidRequest(fmt.Sprintf("invalid request: %v", validators.Describe(cause)), cause)
}

func errSessionNotFound(sessionID string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSessionNotFound, fmt.Sprintf("session %q not found", sessionID), nil)
}

func errInvalidStorageKey(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidStorageKey, "invalid storage key", cause)
}

func errInvalidBlob(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidBlob, "storage value must be valid json", cause)
}

func errBlobTooLarge() *svcerrors.ServiceError {
	return svcerrors.NewPayloadTooLargeError(codeBlobTooLarge, "storage value too large")
}

func errInvalidSlot(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidSlot, fmt.Sprintf("invalid slot: %v", validators.Describe(cause)), cause)
}

func errInternalStorageFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStorageFailed, fmt.Errorf("localStorageFailed: %w", cause))
}
