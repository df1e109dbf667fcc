package service

import (
	"context"

	"github.com/MKhiriev/go-user-posts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, issues and verifies session tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, payload models.UserPayload) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	Logout(ctx context.Context, userID, token string) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate verifies tokenString and checks that it is still the
	// live session of its user.
	Authenticate(ctx context.Context, tokenString string) (models.Token, error)

	// ClearExpiredSessions drops stored tokens that are past their expiry.
	ClearExpiredSessions(ctx context.Context) (int64, error)
}

// UserService implements the user resource.
type UserService interface {
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error)
	UpdateUser(ctx context.Context, id string, payload models.UserPayload) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// PostService implements the post resource.
type PostService interface {
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	CreatePost(ctx context.Context, payload models.PostPayload) (models.Post, error)
	UpdatePost(ctx context.Context, id string, payload models.PostPayload) (models.Post, error)
	DeletePost(ctx context.Context, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
