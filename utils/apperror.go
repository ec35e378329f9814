package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a class of failure surfaced to API callers.
type ErrorCode string

const (
	ErrMissingFields       ErrorCode = "MISSING_FIELDS"
	ErrInvalidTimeFormat   ErrorCode = "INVALID_TIME_FORMAT"
	ErrInvalidDate         ErrorCode = "INVALID_DATE"
	ErrLeadTimeViolation   ErrorCode = "LEAD_TIME_VIOLATION"
	ErrProviderNotFound    ErrorCode = "PROVIDER_NOT_FOUND"
	ErrSlotFull            ErrorCode = "SLOT_FULL"
	ErrUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	ErrUnauthorized        ErrorCode = "UNAUTHORIZED"
	ErrPermissionDenied    ErrorCode = "PERMISSION_DENIED"
	ErrInvalidArgument     ErrorCode = "INVALID_ARGUMENT"
	ErrInternal            ErrorCode = "INTERNAL"
)

var statusByCode = map[ErrorCode]int{
	ErrMissingFields:       http.StatusBadRequest,
	ErrInvalidTimeFormat:   http.StatusBadRequest,
	ErrInvalidDate:         http.StatusBadRequest,
	ErrLeadTimeViolation:   http.StatusBadRequest,
	ErrInvalidArgument:     http.StatusBadRequest,
	ErrUnauthorized:        http.StatusUnauthorized,
	ErrPermissionDenied:    http.StatusForbidden,
	ErrProviderNotFound:    http.StatusNotFound,
	ErrSlotFull:            http.StatusConflict,
	ErrUpstreamUnavailable: http.StatusInternalServerError,
	ErrInternal:            http.StatusInternalServerError,
}

// AppError is a failure with a stable code and a caller-facing message.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for the error's code.
func (e *AppError) Status() int {
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NewAppError creates a validation-style error without an underlying cause.
func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Upstream wraps a store or gateway failure.
func Upstream(message string, err error) *AppError {
	return &AppError{Code: ErrUpstreamUnavailable, Message: message, Err: err}
}

// AsAppError extracts an *AppError from err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// HTTPStatus maps any error to a response status; unknown errors are 500.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Status()
	}
	return http.StatusInternalServerError
}

// PublicMessage is the text safe to return to clients.
func PublicMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return "Internal server error"
	}
	if appErr.Code == ErrUpstreamUnavailable && appErr.Err != nil {
		return fmt.Sprintf("%s: %v", appErr.Message, appErr.Err)
	}
	return appErr.Message
}
