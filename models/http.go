package models

// Envelope is the uniform JSON body of every API response.
type Envelope struct {
	// RequestToken echoes the caller-supplied correlation token, or null when
	// none was supplied.
	RequestToken *string `json:"requestToken"`

	// Message is the human-readable outcome.
	Message string `json:"message"`

	// Error is the failure description. It is always empty for 200 and 201
	// responses.
	Error string `json:"error"`

	// Result is the response payload. Responses without a payload carry an
	// empty array.
	Result any `json:"result"`
}

// ListResult is the payload of list endpoints.
type ListResult[T any] struct {
	Count int `json:"count"`
	Rows  []T `json:"rows"`
}

// NewListResult wraps rows into a [ListResult].
func NewListResult[T any](rows []T) ListResult[T] {
	return ListResult[T]{
		Count: len(rows),
		Rows:  rows,
	}
}
