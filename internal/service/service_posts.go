package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/store"
	"github.com/MKhiriev/go-user-posts/internal/utils"
	"github.com/MKhiriev/go-user-posts/internal/validators"
	"github.com/MKhiriev/go-user-posts/models"
)

type postService struct {
	postRepository store.PostRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewPostService(postRepository store.PostRepository, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		validator:      validator,
		logger:         logger,
	}
}

// ListPosts returns the posts matching filter. A search term of one or two
// characters fails with [ErrSearchTooShort] and an owner filter that is not
// an identifier fails with [ErrInvalidUserFilter].
func (s *postService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	if err := checkSearch(filter.Search); err != nil {
		return nil, err
	}
	if filter.UserID != "" && !utils.IsValidID(filter.UserID) {
		return nil, ErrInvalidUserFilter
	}

	posts, err := s.postRepository.ListPosts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

func (s *postService) GetPost(ctx context.Context, id string) (models.Post, error) {
	if !utils.IsValidID(id) {
		return models.Post{}, store.ErrPostNotFound
	}
	return s.postRepository.GetPostByID(ctx, id)
}

// CreatePost validates payload and persists a post with a unique title.
func (s *postService) CreatePost(ctx context.Context, payload models.PostPayload) (models.Post, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.Post{}, err
	}
	post := payload.ToPost()

	if err := s.checkTitle(ctx, post.Title, ""); err != nil {
		return models.Post{}, err
	}

	created, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.CreatePost").Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}
	return created, nil
}

// UpdatePost applies the set fields of payload to the post with the given id
// and returns the updated post.
//
// Errors, in the order they are checked: [store.ErrPostNotFound],
// [ErrNoFieldsToUpdate], [store.ErrTitleAlreadyExists], [ErrInvalidStatus],
// [ErrInvalidIsPublished] and [validators.ErrValidation].
func (s *postService) UpdatePost(ctx context.Context, id string, payload models.PostPayload) (models.Post, error) {
	if _, err := s.GetPost(ctx, id); err != nil {
		return models.Post{}, err
	}

	if payload.IsEmpty() {
		return models.Post{}, ErrNoFieldsToUpdate
	}

	if err := s.checkTitle(ctx, deref(payload.Title), id); err != nil {
		return models.Post{}, err
	}

	if payload.Status != nil && !oneOf(*payload.Status, models.StatusActive, models.StatusInactive) {
		return models.Post{}, ErrInvalidStatus
	}
	if payload.IsPublished != nil && !oneOf(*payload.IsPublished, models.StatusActive, models.StatusInactive) {
		return models.Post{}, ErrInvalidIsPublished
	}

	if err := s.validator.Validate(ctx, payload, payload.Fields()...); err != nil {
		return models.Post{}, err
	}

	updated, err := s.postRepository.UpdatePost(ctx, id, payload)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.UpdatePost").Str("id", id).Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}
	return updated, nil
}

func (s *postService) DeletePost(ctx context.Context, id string) error {
	if !utils.IsValidID(id) {
		return store.ErrPostNotFound
	}
	return s.postRepository.DeletePost(ctx, id)
}

func (s *postService) checkTitle(ctx context.Context, title, excludeID string) error {
	if title == "" {
		return nil
	}

	taken, err := s.postRepository.TitleTaken(ctx, title, excludeID)
	if err != nil {
		return fmt.Errorf("error checking title: %w", err)
	}
	if taken {
		return store.ErrTitleAlreadyExists
	}
	return nil
}
