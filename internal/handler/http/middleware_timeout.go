package http

import (
	"context"
	"net/http"
)

// withTimeout bounds the request context by h.requestTimeout. It never
// writes to the response itself: an operation cut short by the deadline
// fails with context.DeadlineExceeded and the handler answers with the
// usual envelope.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
