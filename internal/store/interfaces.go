package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-posts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their session tokens.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, update models.UserPayload) (models.User, error)
	DeleteUser(ctx context.Context, id string) error

	// EmailTaken and UsernameTaken report whether a user other than
	// excludeID already owns the value. An empty excludeID checks all users.
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
	UsernameTaken(ctx context.Context, username, excludeID string) (bool, error)

	SetToken(ctx context.Context, id, token string, expiresAt time.Time) error
	ClearToken(ctx context.Context, id string) error
	// ClearExpiredTokens drops every stored session that expired before now
	// and returns the number of affected users.
	ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

// PostRepository persists posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPostByID(ctx context.Context, id string) (models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	UpdatePost(ctx context.Context, id string, update models.PostPayload) (models.Post, error)
	DeletePost(ctx context.Context, id string) error

	// TitleTaken reports whether a post other than excludeID already uses
	// title. An empty excludeID checks all posts.
	TitleTaken(ctx context.Context, title, excludeID string) (bool, error)
}

// SessionCache keeps live session tokens for fast authentication.
// It is a cache only: a miss must be resolved against [UserRepository].
type SessionCache interface {
	SaveSession(ctx context.Context, token, userID string, ttl time.Duration) error
	// GetSession returns the owner of token or [ErrSessionNotFound].
	GetSession(ctx context.Context, token string) (string, error)
	DeleteSession(ctx context.Context, token string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
