// Package apperror provides the structured error taxonomy shared by the
// catalog engine, the stores, and the delivery layers.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Referenced id absent in its collection
	CodeNotFound = "NOT_FOUND"

	// Insert raced or caller supplied an id already held by a live row
	CodeDuplicateKey = "DUPLICATE_KEY"

	// Product create/update names a brand or category that does not exist
	CodeDanglingReference = "DANGLING_REFERENCE"

	// Non-numeric or out-of-range field value supplied at the boundary
	CodeInvalidInput = "INVALID_INPUT"

	// Store connection failure; fatal to the operation, not to the process
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
)

// AppError is the standard error type for the catalog service.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (entity, ids, field names)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// --- Factory functions ---

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewDuplicateKey creates a duplicate surrogate id error (409)
func NewDuplicateKey(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeDuplicateKey,
		Message:    fmt.Sprintf("%s with this id already exists", entity),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewDanglingReference creates a foreign key resolution error (422)
func NewDanglingReference(field string, id any) *AppError {
	return &AppError{
		Code:       CodeDanglingReference,
		Message:    fmt.Sprintf("%s does not resolve to a live row", field),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"field": field, "id": id},
	}
}

// NewInvalidInput creates a boundary validation error (400)
func NewInvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewUpstreamUnavailable wraps a store connection failure (503)
func NewUpstreamUnavailable(err error) *AppError {
	return &AppError{
		Code:       CodeUpstreamUnavailable,
		Message:    "catalog store is unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

// --- Helper functions ---

// AsAppError extracts an AppError from the error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HTTPStatus returns the appropriate HTTP status for any error
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

func is(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if err is CodeNotFound
func IsNotFound(err error) bool { return is(err, CodeNotFound) }

// IsDuplicateKey checks if err is CodeDuplicateKey
func IsDuplicateKey(err error) bool { return is(err, CodeDuplicateKey) }

// IsDanglingReference checks if err is CodeDanglingReference
func IsDanglingReference(err error) bool { return is(err, CodeDanglingReference) }

// IsInvalidInput checks if err is CodeInvalidInput
func IsInvalidInput(err error) bool { return is(err, CodeInvalidInput) }

// IsUpstreamUnavailable checks if err is CodeUpstreamUnavailable
func IsUpstreamUnavailable(err error) bool { return is(err, CodeUpstreamUnavailable) }
