package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-posts/internal/config"
	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/mock"
	"github.com/MKhiriev/go-user-posts/internal/store"
	"github.com/MKhiriev/go-user-posts/internal/validators"
	"github.com/MKhiriev/go-user-posts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	users *mock.MockUserRepository
	cache *mock.MockSessionCache
	svc   *mock.MockUserService
}

func newTestAuthSvc(t *testing.T) (*authService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := authMocks{
		users: mock.NewMockUserRepository(ctrl),
		cache: mock.NewMockSessionCache(ctrl),
		svc:   mock.NewMockUserService(ctrl),
	}

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-user-posts-test",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}
	svc := NewAuthService(m.users, m.cache, m.svc, validators.NewSchemaValidator(), cfg, logger.Nop()).(*authService)
	return svc, m
}

func userWithPassword(t *testing.T, password string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := storedUser()
	user.Password = string(hashed)
	return user
}

func credentials(email, password string) models.Credentials {
	return models.Credentials{Email: ptr(email), Password: ptr(password)}
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_DelegatesToUserService(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	payload := validUserPayload()

	m.svc.EXPECT().CreateUser(gomock.Any(), payload).Return(storedUser(), nil)

	user, err := svc.RegisterUser(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	user := userWithPassword(t, "secret")

	var stored string
	gomock.InOrder(
		m.users.EXPECT().FindUserByEmail(gomock.Any(), user.Email).Return(user, nil),
		m.users.EXPECT().SetToken(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, token string, expiresAt time.Time) error {
				stored = token
				assert.True(t, expiresAt.After(time.Now()))
				return nil
			},
		),
		m.cache.EXPECT().SaveSession(gomock.Any(), gomock.Any(), testUserID, gomock.Any()).Return(nil),
	)

	token, err := svc.Login(context.Background(), credentials(user.Email, "secret"))
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, stored, token.SignedString)
	assert.Equal(t, testUserID, token.UserID)
}

func TestAuthService_Login_RevokesPreviousSession(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	user := userWithPassword(t, "secret")
	user.Token = "previous-token"

	m.users.EXPECT().FindUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	m.cache.EXPECT().DeleteSession(gomock.Any(), "previous-token").Return(errors.New("redis down"))
	m.users.EXPECT().SetToken(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).Return(nil)
	m.cache.EXPECT().SaveSession(gomock.Any(), gomock.Any(), testUserID, gomock.Any()).Return(nil)

	_, err := svc.Login(context.Background(), credentials(user.Email, "secret"))
	require.NoError(t, err)
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		setup   func(t *testing.T, m authMocks)
		wantErr error
	}{
		{
			name:    "missing password",
			creds:   models.Credentials{Email: ptr("john@example.com")},
			wantErr: validators.ErrValidation,
		},
		{
			name:  "unknown email",
			creds: credentials("nobody@example.com", "secret"),
			setup: func(t *testing.T, m authMocks) {
				m.users.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "wrong password",
			creds: credentials("john@example.com", "wrong"),
			setup: func(t *testing.T, m authMocks) {
				m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(userWithPassword(t, "secret"), nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "inactive user",
			creds: credentials("john@example.com", "secret"),
			setup: func(t *testing.T, m authMocks) {
				user := userWithPassword(t, "secret")
				user.Status = models.StatusInactive
				m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantErr: ErrInactiveUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAuthSvc(t)
			if tt.setup != nil {
				tt.setup(t, m)
			}

			_, err := svc.Login(context.Background(), tt.creds)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login_SetTokenError(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	user := userWithPassword(t, "secret")
	dbErr := errors.New("deadlock")

	m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
	m.users.EXPECT().SetToken(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := svc.Login(context.Background(), credentials(user.Email, "secret"))
	assert.ErrorIs(t, err, dbErr)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	svc, m := newTestAuthSvc(t)

	m.users.EXPECT().ClearToken(gomock.Any(), testUserID).Return(store.ErrUserNotFound)
	m.cache.EXPECT().DeleteSession(gomock.Any(), "raw-token").Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), testUserID, "raw-token"))
}

func TestAuthService_Logout_StorageError(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	dbErr := errors.New("connection reset")

	m.users.EXPECT().ClearToken(gomock.Any(), testUserID).Return(dbErr)

	assert.ErrorIs(t, svc.Logout(context.Background(), testUserID, "raw-token"), dbErr)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateToken_InvalidConfig(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	svc.tokenSignKey = ""

	_, err := svc.CreateToken(context.Background(), storedUser())
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	token, err := svc.CreateToken(context.Background(), storedUser())
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, testUserID, parsed.UserID)

	_, err = svc.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	svc.tokenIssuer = "someone-else"
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_CacheHit(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	token, err := svc.CreateToken(context.Background(), storedUser())
	require.NoError(t, err)

	m.cache.EXPECT().GetSession(gomock.Any(), token.SignedString).Return(testUserID, nil)

	got, err := svc.Authenticate(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, testUserID, got.UserID)
}

func TestAuthService_Authenticate_CacheMissFallsBackToStorage(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	token, err := svc.CreateToken(context.Background(), storedUser())
	require.NoError(t, err)

	user := storedUser()
	user.Token = token.SignedString

	m.cache.EXPECT().GetSession(gomock.Any(), token.SignedString).Return("", store.ErrSessionNotFound)
	m.users.EXPECT().GetUserByID(gomock.Any(), testUserID).Return(user, nil)
	m.cache.EXPECT().SaveSession(gomock.Any(), token.SignedString, testUserID, gomock.Any()).Return(nil)

	_, err = svc.Authenticate(context.Background(), token.SignedString)
	require.NoError(t, err)
}

func TestAuthService_Authenticate_RevokedToken(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	token, err := svc.CreateToken(context.Background(), storedUser())
	require.NoError(t, err)

	user := storedUser()
	user.Token = ""

	m.cache.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return("", store.ErrCacheUnavailable)
	m.users.EXPECT().GetUserByID(gomock.Any(), testUserID).Return(user, nil)

	_, err = svc.Authenticate(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authenticate_DeletedUser(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	token, err := svc.CreateToken(context.Background(), storedUser())
	require.NoError(t, err)

	m.cache.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return("", store.ErrSessionNotFound)
	m.users.EXPECT().GetUserByID(gomock.Any(), testUserID).Return(models.User{}, store.ErrUserNotFound)

	_, err = svc.Authenticate(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── ClearExpiredSessions ─────────────────────────────────────────────────────

func TestAuthService_ClearExpiredSessions(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return now }

	m.users.EXPECT().ClearExpiredTokens(gomock.Any(), now).Return(int64(3), nil)

	cleared, err := svc.ClearExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), cleared)
}
