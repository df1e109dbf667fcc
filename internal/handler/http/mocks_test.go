package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-posts/internal/config"
	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/service"
	"github.com/MKhiriev/go-user-posts/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn         func(ctx context.Context, payload models.UserPayload) (models.User, error)
	loginFn                func(ctx context.Context, credentials models.Credentials) (models.Token, error)
	logoutFn               func(ctx context.Context, userID, token string) error
	createTokenFn          func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn           func(ctx context.Context, tokenString string) (models.Token, error)
	authenticateFn         func(ctx context.Context, tokenString string) (models.Token, error)
	clearExpiredSessionsFn func(ctx context.Context) (int64, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	return m.registerUserFn(ctx, payload)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) Logout(ctx context.Context, userID, token string) error {
	return m.logoutFn(ctx, userID, token)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.Token, error) {
	return m.authenticateFn(ctx, tokenString)
}

func (m *mockAuthService) ClearExpiredSessions(ctx context.Context) (int64, error) {
	return m.clearExpiredSessionsFn(ctx)
}

type mockUserService struct {
	listUsersFn  func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	getUserFn    func(ctx context.Context, id string) (models.User, error)
	createUserFn func(ctx context.Context, payload models.UserPayload) (models.User, error)
	updateUserFn func(ctx context.Context, id string, payload models.UserPayload) (models.User, error)
	deleteUserFn func(ctx context.Context, id string) error
}

func (m *mockUserService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return m.listUsersFn(ctx, filter)
}

func (m *mockUserService) GetUser(ctx context.Context, id string) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockUserService) CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	return m.createUserFn(ctx, payload)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id string, payload models.UserPayload) (models.User, error) {
	return m.updateUserFn(ctx, id, payload)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id string) error {
	return m.deleteUserFn(ctx, id)
}

type mockPostService struct {
	listPostsFn  func(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	getPostFn    func(ctx context.Context, id string) (models.Post, error)
	createPostFn func(ctx context.Context, payload models.PostPayload) (models.Post, error)
	updatePostFn func(ctx context.Context, id string, payload models.PostPayload) (models.Post, error)
	deletePostFn func(ctx context.Context, id string) error
}

func (m *mockPostService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	return m.listPostsFn(ctx, filter)
}

func (m *mockPostService) GetPost(ctx context.Context, id string) (models.Post, error) {
	return m.getPostFn(ctx, id)
}

func (m *mockPostService) CreatePost(ctx context.Context, payload models.PostPayload) (models.Post, error) {
	return m.createPostFn(ctx, payload)
}

func (m *mockPostService) UpdatePost(ctx context.Context, id string, payload models.PostPayload) (models.Post, error) {
	return m.updatePostFn(ctx, id, payload)
}

func (m *mockPostService) DeletePost(ctx context.Context, id string) error {
	return m.deletePostFn(ctx, id)
}

// mockAppInfoService implements service.AppInfoService and always returns
// the configured version string.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testVersion = "1.2.3"
	testUserID  = "65f1c2a4e13b9d0a7c5e8f21"
	testPostID  = "65f1c2a4e13b9d0a7c5e8f99"
	validToken  = "valid-token"
)

// authAccepting returns an AuthService mock that authenticates validToken as
// testUserID and rejects everything else.
func authAccepting() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != validToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{SignedString: tokenString, UserID: testUserID}, nil
		},
	}
}

// newTestHandler builds a Handler over svcs. AppInfoService and AuthService
// default to mocks so routes and the envelope work out of the box.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: testVersion}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = authAccepting()
	}
	return NewHandler(svcs, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop())
}
