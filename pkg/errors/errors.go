// Package errors provides the error kinds the API distinguishes and their
// mapping to HTTP status codes.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard error functions
var (
	Is     = errors.Is
	As     = errors.As
	Join   = errors.Join
	Unwrap = errors.Unwrap
)

// Kind classifies an error for HTTP status mapping.
type Kind string

const (
	// KindValidation marks a request that is missing or malformed input.
	KindValidation Kind = "Validation"
	// KindNotFound marks a request for a path that does not exist.
	KindNotFound Kind = "NotFound"
	// KindInternal marks any other failure (permission, IO).
	KindInternal Kind = "Internal"
)

// Error is a custom error type carrying a kind and an optional cause.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`

	cause error
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Validation returns a KindValidation error with the given message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound returns a KindNotFound error with the given message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NotFoundf formats the message.
func NotFoundf(format string, args ...interface{}) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// Internal wraps an unexpected failure, preserving its message and cause.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: cause.Error(), cause: cause}
}

// HTTPStatus maps an error to its HTTP status code. Errors that are not
// *Error report 500.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
