// Package errors holds transport-level errors produced by delivery layers.
package errors

import "net/http"

// HTTPError is a domain error already translated into an HTTP status and a user-facing message.
type HTTPError struct {
	Code    int
	Message string
	Fields  map[string]string
}

func (e *HTTPError) Error() string { return e.Message }

// NewHTTPError creates an HTTPError with the given status code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewValidationError creates a 400 HTTPError carrying per-field messages.
func NewValidationError(message string, fields map[string]string) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Message: message, Fields: fields}
}

// ErrInternalServerError is returned for anything the delivery layer does not recognise.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
