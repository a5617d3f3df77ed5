package core

import (
	"errors"
	"net/http"
)

// Kind classifies an application error so the transport layer can map it to
// an HTTP status code in exactly one place.
type Kind uint8

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindInvalidCredentials
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInvalidOrExpired
)

// Error is the application error carried from services up to HTTP handlers.
// Message is safe to show to clients; Err holds the internal cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewError creates an application error with a client-facing message.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError attaches an internal cause to a client-facing message.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// HTTPStatus maps an error to the status code it should produce. Errors that
// are not *Error default to 500.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput, KindInvalidOrExpired, KindInvalidCredentials:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to include in a response body.
// Internal errors never leak their cause.
func ClientMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "Internal server error"
}
