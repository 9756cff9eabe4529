package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument  = "invalid_argument"
	categoryNotFound         = "not_found"
	categoryResourceConflict = "resource_conflict"
	categoryUnsupportedMedia = "unsupported_media_type"
	categoryPayloadTooLarge  = "payload_too_large"
	categoryInternal         = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string // invalid_argument, not_found, ... or internal
	Code           string // service-owned stable code (e.g. SES_1000)
	Message        string // client-safe, human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int
}

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryInvalidArgument, code, message, cause, http.StatusBadRequest)
}

// NewNotFoundError creates a new ServiceError with category not_found.
func NewNotFoundError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryNotFound, code, message, cause, http.StatusNotFound)
}

// NewResourceConflictError creates a new ServiceError with category resource_conflict.
func NewResourceConflictError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryResourceConflict, code, message, cause, http.StatusConflict)
}

// NewUnsupportedMediaTypeError creates a new ServiceError with category unsupported_media_type.
func NewUnsupportedMediaTypeError(code, message string) *ServiceError {
	return newServiceError(categoryUnsupportedMedia, code, message, nil, http.StatusUnsupportedMediaType)
}

// NewPayloadTooLargeError creates a new ServiceError with category payload_too_large.
func NewPayloadTooLargeError(code, message string) *ServiceError {
	return newServiceError(categoryPayloadTooLarge, code, message, nil, http.StatusRequestEntityTooLarge)
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return newServiceError(categoryInternal, code, "internal server error", cause, http.StatusInternalServerError)
}

// NewInternalErrorUndefined wraps an error that carries no service code.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

func newServiceError(category, code, message string, cause error, status int) *ServiceError {
	return &ServiceError{
		Category:       category,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: status,
	}
}

// AsServiceError extracts a ServiceError from the error chain.
// It returns (*ServiceError, true) if err wraps a ServiceError, otherwise (nil, false).
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsNotFound() bool {
	return e.Category == categoryNotFound
}
