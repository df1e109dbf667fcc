package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/service"
	"github.com/MKhiriev/go-user-posts/internal/utils"
)

// unauthorizedMessage is the message part of every 401 written by [Handler.auth].
const unauthorizedMessage = "Unauthorized"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header and checks it
// with [service.AuthService.Authenticate], which rejects tokens that are
// malformed, expired, signed by someone else or no longer the live session
// of their user. On success the user's ID is stored in the request context
// under [utils.UserIDCtxKey] and the raw token under [utils.TokenCtxKey].
//
// Every rejection is answered with a 401 envelope whose error part names the
// reason.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.unauthorized(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.unauthorized(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				log.Err(err).Msg("rejected token")
				h.unauthorized(w, r, err)
				return
			}
			log.Err(err).Msg("error occurred during authentication")
			h.respond(w, r, "Something went wrong", http.StatusInternalServerError, nil)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request, reason error) {
	h.respond(w, r, unauthorizedMessage+messageSeparator+reason.Error(), http.StatusUnauthorized, nil)
}
