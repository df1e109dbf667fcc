package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/mock"
	"github.com/MKhiriev/go-user-posts/internal/store"
	"github.com/MKhiriev/go-user-posts/internal/validators"
	"github.com/MKhiriev/go-user-posts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPostID = "65f1c2a4e13b9d0a7c5e8f99"

func newTestPostSvc(t *testing.T) (PostService, *mock.MockPostRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPostRepository(ctrl)
	return NewPostService(repo, validators.NewSchemaValidator(), logger.Nop()), repo
}

func validPostPayload() models.PostPayload {
	return models.PostPayload{
		Title:       ptr("First post"),
		Description: ptr("A description long enough"),
		IsPublished: ptr(models.StatusActive),
		Status:      ptr(models.StatusActive),
		UserID:      ptr(testUserID),
	}
}

func TestPostService_ListPosts_Filters(t *testing.T) {
	svc, repo := newTestPostSvc(t)

	_, err := svc.ListPosts(context.Background(), models.PostFilter{Search: "ab"})
	assert.ErrorIs(t, err, ErrSearchTooShort)

	_, err = svc.ListPosts(context.Background(), models.PostFilter{UserID: "12345"})
	assert.ErrorIs(t, err, ErrInvalidUserFilter)

	filter := models.PostFilter{UserID: testUserID, IsPublished: models.StatusActive}
	repo.EXPECT().ListPosts(gomock.Any(), filter).Return([]models.Post{}, nil)

	posts, err := svc.ListPosts(context.Background(), filter)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostService_GetPost(t *testing.T) {
	svc, repo := newTestPostSvc(t)

	_, err := svc.GetPost(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrPostNotFound)

	repo.EXPECT().GetPostByID(gomock.Any(), testPostID).Return(models.Post{ID: testPostID}, nil)
	post, err := svc.GetPost(context.Background(), testPostID)
	require.NoError(t, err)
	assert.Equal(t, testPostID, post.ID)
}

func TestPostService_CreatePost_Success(t *testing.T) {
	svc, repo := newTestPostSvc(t)

	gomock.InOrder(
		repo.EXPECT().TitleTaken(gomock.Any(), "First post", "").Return(false, nil),
		repo.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Post) (models.Post, error) {
				p.ID = testPostID
				return p, nil
			},
		),
	)

	post, err := svc.CreatePost(context.Background(), validPostPayload())
	require.NoError(t, err)
	assert.Equal(t, testPostID, post.ID)
	assert.Equal(t, testUserID, post.UserID)
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	svc, _ := newTestPostSvc(t)
	payload := validPostPayload()
	payload.Title = ptr("abc")

	_, err := svc.CreatePost(context.Background(), payload)
	fieldErr, ok := validators.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "Title length must be at least 5 characters long.", fieldErr.Message)
}

func TestPostService_CreatePost_TitleTaken(t *testing.T) {
	svc, repo := newTestPostSvc(t)

	repo.EXPECT().TitleTaken(gomock.Any(), "First post", "").Return(true, nil)

	_, err := svc.CreatePost(context.Background(), validPostPayload())
	assert.ErrorIs(t, err, store.ErrTitleAlreadyExists)
}

func TestPostService_UpdatePost(t *testing.T) {
	existing := models.Post{ID: testPostID, Title: "First post"}

	tests := []struct {
		name    string
		payload models.PostPayload
		setup   func(repo *mock.MockPostRepository)
		wantErr error
	}{
		{
			name:    "empty payload",
			payload: models.PostPayload{},
			wantErr: ErrNoFieldsToUpdate,
		},
		{
			name:    "title owned by another post",
			payload: models.PostPayload{Title: ptr("Other title")},
			setup: func(repo *mock.MockPostRepository) {
				repo.EXPECT().TitleTaken(gomock.Any(), "Other title", testPostID).Return(true, nil)
			},
			wantErr: store.ErrTitleAlreadyExists,
		},
		{
			name:    "bad status",
			payload: models.PostPayload{Status: ptr("draft")},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "bad is_published",
			payload: models.PostPayload{IsPublished: ptr("yes")},
			wantErr: ErrInvalidIsPublished,
		},
		{
			name:    "short description",
			payload: models.PostPayload{Description: ptr("short")},
			wantErr: validators.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestPostSvc(t)
			repo.EXPECT().GetPostByID(gomock.Any(), testPostID).Return(existing, nil)
			if tt.setup != nil {
				tt.setup(repo)
			}

			_, err := svc.UpdatePost(context.Background(), testPostID, tt.payload)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPostService_UpdatePost_Success(t *testing.T) {
	svc, repo := newTestPostSvc(t)
	payload := models.PostPayload{Status: ptr(models.StatusInactive)}

	repo.EXPECT().GetPostByID(gomock.Any(), testPostID).Return(models.Post{ID: testPostID}, nil)
	repo.EXPECT().UpdatePost(gomock.Any(), testPostID, payload).
		Return(models.Post{ID: testPostID, Status: models.StatusInactive}, nil)

	post, err := svc.UpdatePost(context.Background(), testPostID, payload)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, post.Status)
}

func TestPostService_DeletePost(t *testing.T) {
	svc, repo := newTestPostSvc(t)

	assert.ErrorIs(t, svc.DeletePost(context.Background(), ""), store.ErrPostNotFound)

	repo.EXPECT().DeletePost(gomock.Any(), testPostID).Return(store.ErrPostNotFound)
	assert.ErrorIs(t, svc.DeletePost(context.Background(), testPostID), store.ErrPostNotFound)
}
