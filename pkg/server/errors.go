package server

import (
	"fmt"
	"net/http"
)

const (
	codeInvalidInput        = "invalid_input"
	codeNotFound            = "not_found"
	codeUnimplemented       = "unimplemented"
	codeUpstreamUnavailable = "upstream_unavailable"
	codeInternal            = "internal"
)

// apiError is the error taxonomy exposed to clients. Every handler failure
// ends up as one of these before it is written to the response.
type apiError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`

	cause error
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// withCause attaches the underlying failure for the log channel. It never
// reaches the response body.
func (e *apiError) withCause(cause error) *apiError {
	e.cause = cause
	return e
}

func (e *apiError) Unwrap() error {
	return e.cause
}

func (e *apiError) httpStatus() int {
	switch e.Code {
	case codeInvalidInput, codeUnimplemented:
		return http.StatusBadRequest
	case codeNotFound:
		return http.StatusNotFound
	case codeUpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errInvalidInput(message string) *apiError {
	return &apiError{Code: codeInvalidInput, Message: message}
}

func errInvalidFields(fields map[string]string) *apiError {
	return &apiError{
		Code:    codeInvalidInput,
		Message: "validation failed",
		Fields:  fields,
	}
}

func errNotFound(message string) *apiError {
	return &apiError{Code: codeNotFound, Message: message}
}

func errUnimplemented(message string) *apiError {
	return &apiError{Code: codeUnimplemented, Message: message}
}

// errUpstream wraps a chain RPC failure. The underlying error text is kept
// out of the response body.
func errUpstream(message string) *apiError {
	return &apiError{Code: codeUpstreamUnavailable, Message: message}
}

func errInternal(message string) *apiError {
	return &apiError{Code: codeInternal, Message: message}
}
