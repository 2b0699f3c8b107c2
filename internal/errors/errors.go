package errors

import (
	"errors"
	"net/http"
)

// Kind classifies an error for HTTP status mapping.
type Kind int

const (
	// KindValidation marks missing or malformed input.
	KindValidation Kind = iota
	// KindConflict marks a duplicate unique field.
	KindConflict
	// KindAuth marks a missing/invalid/expired token or bad credentials.
	KindAuth
	// KindForbidden marks a caller disallowed by role, ownership, or active status.
	KindForbidden
	// KindNotFound marks a missing resource.
	KindNotFound
	// KindInternal marks anything unanticipated.
	KindInternal
)

// Error is a typed domain error carrying a user-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a 400 validation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Conflict builds a 400 duplicate-field error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Auth builds a 401 authentication error.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// Forbidden builds a 403 authorization error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound builds a 404 error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps an unanticipated failure. The wrapped error is reported as
// detail; the message stays generic so internals never leak verbatim.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// StatusCode maps an error kind to its HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AsError extracts a typed *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
