package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the given status code.
//
// The body is fully encoded before any header is written, so an encoding
// failure still results in a clean 500 response. HTML characters are not
// escaped.
//
// Returns the number of bytes written to the response body.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}
