package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// requestTokenKey is the body and query key of the request correlation token.
const requestTokenKey = "request_token"

// maxBodyBytes bounds the size of accepted request bodies.
const maxBodyBytes = 1 << 20

// readPayload reads the body of r as an untyped JSON object. An empty body
// yields an empty payload. The request_token meta key is removed.
func readPayload(r *http.Request) (map[string]json.RawMessage, error) {
	payload, err := readBodyObject(r)
	if err != nil {
		return nil, err
	}
	delete(payload, requestTokenKey)
	return payload, nil
}

// readBodyObject is readPayload without removing request_token, for
// handlers that count every key the client sent.
func readBodyObject(r *http.Request) (map[string]json.RawMessage, error) {
	payload := make(map[string]json.RawMessage)
	if r.Body == nil {
		return payload, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if len(body) > maxBodyBytes {
		return nil, ErrBodyTooLarge
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return payload, nil
	}

	if err = json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return payload, nil
}

// requestTokenFromBody returns the request_token of a JSON object body as
// text, or "". The body of r stays readable.
func requestTokenFromBody(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	r.Body = readCloser{
		Reader: io.MultiReader(bytes.NewReader(body), r.Body),
		Closer: r.Body,
	}
	if err != nil || len(body) > maxBodyBytes {
		return ""
	}

	var meta struct {
		RequestToken json.RawMessage `json:"request_token"`
	}
	if json.Unmarshal(body, &meta) != nil {
		return ""
	}
	return rawTokenText(meta.RequestToken)
}

// rawTokenText renders a request_token value as text: strings unquoted,
// other values as their compact JSON. Absent and null yield "".
func rawTokenText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var text string
	if json.Unmarshal(raw, &text) == nil {
		return text
	}

	var compact bytes.Buffer
	if json.Compact(&compact, raw) != nil {
		return ""
	}
	return compact.String()
}

type readCloser struct {
	io.Reader
	io.Closer
}
