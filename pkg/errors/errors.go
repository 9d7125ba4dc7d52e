package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness. For errors
// originating from the scheduling backend, Message carries the server's own
// reason string verbatim.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound    = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrConflict    = New("CONFLICT", http.StatusConflict, "conflict")
	ErrValidation  = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal    = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrUnavailable = New("BACKEND_UNAVAILABLE", http.StatusServiceUnavailable, "scheduling backend unreachable")
	ErrSwapRefused = New("SWAP_REFUSED", http.StatusBadRequest, "exchange refused")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// FromStatus maps a backend HTTP status and reason onto a typed error.
func FromStatus(status int, message string) *Error {
	code := "BACKEND_ERROR"
	switch status {
	case http.StatusNotFound:
		code = ErrNotFound.Code
	case http.StatusConflict:
		code = ErrConflict.Code
	case http.StatusBadRequest:
		code = ErrValidation.Code
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		code = ErrUnavailable.Code
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return New(code, status, message)
}

// Clone returns a copy of the error with an overriding message, keeping the
// code and status of the template.
func (e *Error) Clone(message string) *Error {
	if e == nil {
		return nil
	}
	clone := *e
	if message != "" {
		clone.Message = message
	}
	return &clone
}
