package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-posts/internal/service"
	"github.com/MKhiriev/go-user-posts/internal/store"
)

func TestWithTimeout_SetsDeadline(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	h.requestTimeout = time.Minute

	var deadline time.Time
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	})

	h.withTimeout(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestWithTimeout_ExpiredRequestAnswersWithEnvelope(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	h.requestTimeout = 10 * time.Millisecond

	router := chi.NewRouter()
	router.Use(h.withRequestToken, h.withTimeout)
	router.Get("/slow", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		err := fmt.Errorf("%w: %w", store.ErrExecutingQuery, r.Context().Err())
		h.respondError(w, r, err, nil, "Something went wrong.")
	})

	rec, env := serve(t, router, http.MethodGet, "/slow?request_token=slow-1", "", nil)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "Request timed out", env.Message)
	require.NotNil(t, env.RequestToken)
	assert.Equal(t, "slow-1", *env.RequestToken)
}

func TestWithTimeout_FinishedHandlerKeepsItsStatus(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	h.requestTimeout = 10 * time.Millisecond

	rec := httptest.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		h.respond(w, r, "late but fine", http.StatusOK, nil)
	})
	h.withTimeout(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"late but fine"`)
}

func TestStatusFromError_DeadlineExceeded(t *testing.T) {
	assert.Equal(t, http.StatusGatewayTimeout, statusFromError(context.DeadlineExceeded))
	assert.Equal(t, http.StatusGatewayTimeout, statusFromError(fmt.Errorf("query: %w", context.DeadlineExceeded)))
}
