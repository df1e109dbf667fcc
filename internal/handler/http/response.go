package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/store"
	"github.com/MKhiriev/go-user-posts/internal/utils"
	"github.com/MKhiriev/go-user-posts/internal/validators"
	"github.com/MKhiriev/go-user-posts/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	requestTokenHeader = "X-Request-Token"
	requestIDHeader    = "X-Request-Id"
	apiVersionHeader   = "X-Api-Version"
)

// messageSeparator splits a response message into its message and error
// parts, e.g. "Unauthorized|token is expired or invalid".
const messageSeparator = "|"

// errorMessages maps domain errors to the message a handler reports for them.
// The status code comes from [statusFromError].
type errorMessages map[error]string

// commonMessages are consulted after the handler specific messages.
var commonMessages = errorMessages{
	context.DeadlineExceeded:  "Request timed out",
	ErrInvalidJSON:            "Invalid JSON was passed",
	ErrBodyTooLarge:           "Request body is too large",
	bcrypt.ErrPasswordTooLong: `"password" length must be less than or equal to 72 bytes long`,
	store.ErrValueTooLong:     "A value exceeds the allowed length",
}

// respond writes msg and result wrapped in a [models.Envelope].
//
// msg may carry a message and an error separated by "|"; without a separator
// both parts equal msg. The error part is always empty for 200 and 201. A nil
// result is written as an empty array.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, msg string, code int, result any) {
	message, errText := splitMessage(msg)
	if code == http.StatusOK || code == http.StatusCreated {
		errText = ""
	}
	if result == nil {
		result = []any{}
	}

	envelope := models.Envelope{
		Message: message,
		Error:   errText,
		Result:  result,
	}
	if requestToken, ok := utils.GetRequestTokenFromContext(r.Context()); ok {
		envelope.RequestToken = &requestToken
		w.Header().Set(requestTokenHeader, requestToken)
	}

	w.Header().Set(requestIDHeader, uuid.NewString())
	if h.services.AppInfoService != nil {
		w.Header().Set(apiVersionHeader, h.services.AppInfoService.GetAppVersion(r.Context()))
	}

	if _, err := utils.WriteJSON(w, envelope, code); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// fail responds with 400 and no result.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string) {
	h.respond(w, r, msg, http.StatusBadRequest, nil)
}

// respondError reports err to the client.
//
// A [*validators.FieldError] is reported with its own message. Otherwise
// the first of messages and [commonMessages] matching err selects the
// message. Unmatched errors are logged and reported as 500 with fallback.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, messages errorMessages, fallback string) {
	if fieldErr, ok := validators.AsFieldError(err); ok {
		h.fail(w, r, fieldErr.Message)
		return
	}

	for _, m := range []errorMessages{messages, commonMessages} {
		for target, msg := range m {
			if errors.Is(err, target) {
				h.respond(w, r, msg, statusFromError(target), nil)
				return
			}
		}
	}

	logger.FromRequest(r).Err(err).Msg(fallback)
	h.respond(w, r, fallback, http.StatusInternalServerError, nil)
}

func splitMessage(msg string) (message, errText string) {
	parts := strings.Split(msg, messageSeparator)
	if len(parts) < 2 {
		return msg, msg
	}
	return parts[0], parts[1]
}
