package http

import (
	"bytes"
	"net/http"
	"strings"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id", wantSameTraceID: true},
		{name: "longest accepted trace ID is reused", requestTraceID: strings.Repeat("a", maxTraceIDLength), wantSameTraceID: true},
		{name: "no trace ID in request, UUID generated", requestTraceID: ""},
		{name: "oversized trace ID replaced", requestTraceID: strings.Repeat("a", maxTraceIDLength+1)},
		{name: "trace ID with spaces replaced", requestTraceID: "two words"},
		{name: "non-ASCII trace ID replaced", requestTraceID: "trace-é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			responseTraceID := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, responseTraceID)
			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, responseTraceID)
			} else {
				_, err := uuid.Parse(responseTraceID)
				assert.NoError(t, err)
			}
			assert.True(t, nextCalled)
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}
