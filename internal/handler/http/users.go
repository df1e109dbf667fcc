package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-user-posts/internal/service"
	"github.com/MKhiriev/go-user-posts/internal/store"
	"github.com/MKhiriev/go-user-posts/internal/validators"
	"github.com/MKhiriev/go-user-posts/models"
	"github.com/go-chi/chi/v5"
)

const searchTooShortMessage = "Search length must be more than 3 characters"

var (
	listUsersMessages = errorMessages{
		service.ErrSearchTooShort: searchTooShortMessage,
	}
	getUserMessages = errorMessages{
		store.ErrUserNotFound: "User not found",
	}
	createUserMessages = errorMessages{
		store.ErrEmailAlreadyExists:    "User with same email already exist",
		store.ErrUsernameAlreadyExists: "User with the same username already exist.",
		validators.ErrInvalidUsername:  usernamePolicyMessage,
	}
	updateUserMessages = errorMessages{
		store.ErrUserNotFound:          "User not found",
		service.ErrNoFieldsToUpdate:    "Invalid field name entered",
		store.ErrEmailAlreadyExists:    "User with the same email already exist.",
		store.ErrUsernameAlreadyExists: "User with the same username already exist.",
		service.ErrInvalidUserType:     "User type must be either user or admin.",
		service.ErrInvalidStatus:       "Status must be either active or inactive.",
		validators.ErrInvalidUsername:  usernamePolicyMessage,
	}
	deleteUserMessages = errorMessages{
		store.ErrUserNotFound: "User not found.",
	}
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.UserFilter{
		Search:   query.Get("search"),
		Status:   query.Get("status"),
		UserType: query.Get("user_type"),
	}

	users, err := h.services.UserService.ListUsers(r.Context(), filter)
	if err != nil {
		h.respondError(w, r, err, listUsersMessages, "Something went wrong, while getting all users")
		return
	}
	if len(users) == 0 {
		h.respond(w, r, "No users found", http.StatusNotFound, nil)
		return
	}

	h.respond(w, r, "Users fetched successfully", http.StatusOK, models.NewListResult(users))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err, getUserMessages, "Something went wrong while getting user")
		return
	}

	h.respond(w, r, "User found", http.StatusOK, user)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	h.saveUser(w, r, h.services.UserService.CreateUser, createUserMessages)
}

// saveUser decodes a complete user payload and persists it with create. It
// serves both registration and user creation, which differ in messages only.
func (h *Handler) saveUser(
	w http.ResponseWriter,
	r *http.Request,
	create func(context.Context, models.UserPayload) (models.User, error),
	messages errorMessages,
) {
	const fallback = "Something went wrong while registering."

	payload, err := readPayload(r)
	if err != nil {
		h.respondError(w, r, err, messages, fallback)
		return
	}
	if len(payload) == 0 {
		h.fail(w, r, "All fields required.")
		return
	}

	var input models.UserPayload
	if err = validators.DecodeStrict(payload, &input); err != nil {
		h.respondError(w, r, err, messages, fallback)
		return
	}

	user, err := create(r.Context(), input)
	if err != nil {
		h.respondError(w, r, err, messages, fallback)
		return
	}

	h.respond(w, r, "User registered successfully", http.StatusCreated, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	const fallback = "Something went wrong, while updating."

	payload, err := readBodyObject(r)
	if err != nil {
		h.respondError(w, r, err, updateUserMessages, fallback)
		return
	}
	if len(payload) == 0 {
		h.fail(w, r, "Inputs can not be empty.")
		return
	}

	// a missing user is reported before anything about the body
	id := chi.URLParam(r, "id")
	if _, err = h.services.UserService.GetUser(r.Context(), id); err != nil {
		h.respondError(w, r, err, updateUserMessages, fallback)
		return
	}
	delete(payload, requestTokenKey)

	var input models.UserPayload
	if err = validators.Decode(payload, &input); err != nil {
		h.respondError(w, r, err, updateUserMessages, fallback)
		return
	}

	if _, err = h.services.UserService.UpdateUser(r.Context(), id, input); err != nil {
		h.respondError(w, r, err, updateUserMessages, fallback)
		return
	}

	h.respond(w, r, "User updated successfully", http.StatusOK, nil)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.services.UserService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err, deleteUserMessages, "Something went wrong.")
		return
	}

	h.respond(w, r, "User deleted successfully.", http.StatusOK, nil)
}
