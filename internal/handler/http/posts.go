package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-posts/internal/service"
	"github.com/MKhiriev/go-user-posts/internal/store"
	"github.com/MKhiriev/go-user-posts/internal/validators"
	"github.com/MKhiriev/go-user-posts/models"
	"github.com/go-chi/chi/v5"
)

var (
	listPostsMessages = errorMessages{
		service.ErrSearchTooShort:    searchTooShortMessage,
		service.ErrInvalidUserFilter: "User query length must be equal to 24 characters long",
	}
	getPostMessages = errorMessages{
		store.ErrPostNotFound: "Post not found",
	}
	createPostMessages = errorMessages{
		store.ErrTitleAlreadyExists: "The post with same title already exist.",
	}
	updatePostMessages = errorMessages{
		store.ErrPostNotFound:         "Post not found",
		service.ErrNoFieldsToUpdate:   "Invalid field name entered",
		store.ErrTitleAlreadyExists:   "The post with same title already exists.",
		service.ErrInvalidStatus:      "Status must be either active or inactive.",
		service.ErrInvalidIsPublished: "is_published must be either active or inactive.",
	}
	deletePostMessages = errorMessages{
		store.ErrPostNotFound: "Post not found",
	}
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.PostFilter{
		Search:      query.Get("search"),
		IsPublished: query.Get("is_published"),
		Status:      query.Get("status"),
		UserID:      query.Get("user"),
	}

	posts, err := h.services.PostService.ListPosts(r.Context(), filter)
	if err != nil {
		h.respondError(w, r, err, listPostsMessages, "Something went wrong while getting all posts.")
		return
	}
	if len(posts) == 0 {
		h.respond(w, r, "No posts found", http.StatusNotFound, nil)
		return
	}

	h.respond(w, r, "Posts fetched successfully", http.StatusOK, models.NewListResult(posts))
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err, getPostMessages, "Something went wrong, could not find post.")
		return
	}

	h.respond(w, r, "Post found", http.StatusOK, post)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	const fallback = "Something went wrong, please try again later."

	payload, err := readPayload(r)
	if err != nil {
		h.respondError(w, r, err, createPostMessages, fallback)
		return
	}
	if len(payload) == 0 {
		h.fail(w, r, "All fields are required.")
		return
	}

	var input models.PostPayload
	if err = validators.DecodeStrict(payload, &input); err != nil {
		h.respondError(w, r, err, createPostMessages, fallback)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), input)
	if err != nil {
		h.respondError(w, r, err, createPostMessages, fallback)
		return
	}

	h.respond(w, r, "Post created successfully", http.StatusCreated, post)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	const fallback = "Something went wrong."

	payload, err := readBodyObject(r)
	if err != nil {
		h.respondError(w, r, err, updatePostMessages, fallback)
		return
	}
	if len(payload) == 0 {
		h.fail(w, r, "Inputs can not be empty.")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err = h.services.PostService.GetPost(r.Context(), id); err != nil {
		h.respondError(w, r, err, updatePostMessages, fallback)
		return
	}
	delete(payload, requestTokenKey)

	var input models.PostPayload
	if err = validators.Decode(payload, &input); err != nil {
		h.respondError(w, r, err, updatePostMessages, fallback)
		return
	}

	post, err := h.services.PostService.UpdatePost(r.Context(), id, input)
	if err != nil {
		h.respondError(w, r, err, updatePostMessages, fallback)
		return
	}

	h.respond(w, r, "Post updated successfully", http.StatusOK, post)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PostService.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err, deletePostMessages, "Something went wrong, while deleting the post.")
		return
	}

	h.respond(w, r, "Post has been successfully deleted", http.StatusOK, nil)
}
