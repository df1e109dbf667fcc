package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/service"
	"github.com/MKhiriev/go-user-posts/internal/store"
	"github.com/MKhiriev/go-user-posts/internal/utils"
	"github.com/MKhiriev/go-user-posts/internal/validators"
	"github.com/MKhiriev/go-user-posts/models"
)

const usernamePolicyMessage = "The username should starts with an alphabet, and should contain only alphabets, numbers or underscores."

var registerMessages = errorMessages{
	store.ErrEmailAlreadyExists:    "User with same email already exist",
	store.ErrUsernameAlreadyExists: "User with same username already exist",
	validators.ErrInvalidUsername:  usernamePolicyMessage,
}

var loginMessages = errorMessages{
	service.ErrInvalidCredentials: "Invalid credentials, either email or password are wrong.",
	service.ErrInactiveUser:       "Inactive user; User disabled",
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	h.saveUser(w, r, h.services.AuthService.RegisterUser, registerMessages)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	payload, err := readPayload(r)
	if err != nil {
		h.respondError(w, r, err, nil, "Something went wrong, please try again")
		return
	}

	var credentials models.Credentials
	if err = validators.Decode(payload, &credentials); err != nil {
		h.respondError(w, r, err, nil, "Something went wrong, please try again")
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.respondError(w, r, err, loginMessages, "Something went wrong, please try again")
		return
	}

	log.Debug().Str("id", token.UserID).Msg("user successfully logged in")

	h.respond(w, r, "User logged in successfully.", http.StatusOK, token)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utils.GetUserIDFromContext(ctx)
	token, _ := utils.GetTokenFromContext(ctx)

	if err := h.services.AuthService.Logout(ctx, userID, token); err != nil {
		h.respondError(w, r, err, nil, "Something went wrong")
		return
	}

	h.respond(w, r, "Logged out successfully", http.StatusOK, nil)
}
