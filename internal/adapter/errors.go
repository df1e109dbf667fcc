package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is a non-2xx response decoded from the envelope.
type APIError struct {
	StatusCode int
	// Message and Detail are the envelope's message and error.
	Message string
	Detail  string

	kind error
}

func (e *APIError) Error() string {
	if e.Detail != "" && e.Detail != e.Message {
		return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the sentinel matching the status code, if any.
func (e *APIError) Unwrap() error {
	return e.kind
}
