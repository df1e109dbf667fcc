package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-posts/internal/utils"
)

// withRequestToken resolves the request correlation token once per request
// and stores it in the context for [Handler.respond]. The X-Request-Token
// header wins over the body request_token key, which wins over the
// request_token query parameter.
func (h *Handler) withRequestToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestToken := r.Header.Get(requestTokenHeader)
		if requestToken == "" {
			requestToken = requestTokenFromBody(r)
		}
		if requestToken == "" {
			requestToken = r.URL.Query().Get(requestTokenKey)
		}

		if requestToken != "" {
			r = r.WithContext(utils.WithRequestToken(r.Context(), requestToken))
		}

		next.ServeHTTP(w, r)
	})
}
