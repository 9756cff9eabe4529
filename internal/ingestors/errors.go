package ingestors

import (
	"fmt"

	"auction-analytics/internal/shared/svcerrors"
)

// EventIngestor errors
const (
	codeValidationFailed      = "ING_1000"
	codeBatchAlreadyProcessed = "ING_1001"
	codeBatchTooLarge         = "ING_1002"
	codeUnsupportedMediaType  = "ING_1003"

	codeInternalEventBatchStoreFailed = "ING_9000"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errEventBatchAlreadyProcessed returns an error when a batch was already accepted under the same idempotency key.
func errEventBatchAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadyProcessed, "event batch already processed", cause)
}

func errBatchTooLarge(max int) *svcerrors.ServiceError {
	return svcerrors.NewPayloadTooLargeError(codeBatchTooLarge, fmt.Sprintf("batch too large: must be <= %d bytes", max))
}

func errUnsupportedMediaType(contentType string) *svcerrors.ServiceError {
	return svcerrors.NewUnsupportedMediaTypeError(codeUnsupportedMediaType, fmt.Sprintf("unsupported content type: %q", contentType))
}

// errInternalEventBatchStoreFailed returns an error when the batch receipt cannot be stored.
func errInternalEventBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventBatchStoreFailed, fmt.Errorf("eventBatchStoreFailed: %w", cause))
}
