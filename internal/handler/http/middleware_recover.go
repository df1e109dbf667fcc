package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-user-posts/internal/logger"
)

// withRecover turns a panic in a downstream handler into a 500 envelope.
// http.ErrAbortHandler is re-raised so the server aborts the response.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			h.respond(w, r, "Something went wrong", http.StatusInternalServerError, nil)
		}()

		next.ServeHTTP(w, r)
	})
}
