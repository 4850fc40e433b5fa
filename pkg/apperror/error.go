// Package apperror defines the service error taxonomy and its HTTP mapping.
//
// Errors carry an HTTP status, a stable machine code, and a human message.
// On the wire every error is rendered as {"detail": <message>}.
package apperror

import (
	"fmt"
	"net/http"
)

// Error represents an application error with HTTP status and error code.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error.
func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of the error with an internal error attached.
func (e *Error) WithInternal(err error) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   err,
	}
}

// WithMessage returns a copy of the error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    message,
		Internal:   e.Internal,
	}
}

// New creates a new application error.
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

// Common error definitions.
var (
	// Validation errors (schema, enum, length, range, reference violations).
	ErrBadRequest = New(http.StatusBadRequest, "bad_request", "Invalid request")

	// Resource errors.
	ErrNotFound = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrConflict = New(http.StatusConflict, "conflict", "Resource already exists")

	// Store errors.
	ErrStoreUnavailable = New(http.StatusServiceUnavailable, "store_unavailable", "Datastore is unavailable")
	ErrDatabase         = New(http.StatusInternalServerError, "database_error", "Database operation failed")

	// Server errors.
	ErrInternal = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// ToHTTPError converts any error to an HTTP status and a response body.
// Unknown errors collapse to a generic 500 so internals never leak.
func ToHTTPError(err error) (int, map[string]any) {
	if appErr, ok := err.(*Error); ok {
		return appErr.HTTPStatus, map[string]any{"detail": appErr.Message}
	}
	return http.StatusInternalServerError, map[string]any{"detail": "An internal error occurred"}
}

// NewBadRequest creates a bad request error with a custom message.
func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewNotFound creates a not found error for a resource type.
func NewNotFound(resourceType string) *Error {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s not found", resourceType))
}

// NewInternal creates an internal error with a message and optional wrapped error.
func NewInternal(message string, err error) *Error {
	return &Error{
		HTTPStatus: http.StatusInternalServerError,
		Code:       "internal_error",
		Message:    message,
		Internal:   err,
	}
}
