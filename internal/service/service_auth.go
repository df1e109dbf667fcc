package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-posts/internal/config"
	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/store"
	"github.com/MKhiriev/go-user-posts/internal/utils"
	"github.com/MKhiriev/go-user-posts/internal/validators"
	"github.com/MKhiriev/go-user-posts/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT session
// lifecycle. A user has at most one live session: the token stored on the
// user row, mirrored in the session cache.
type authService struct {
	// userRepository is the data-access layer used to look up users and
	// store their session token.
	userRepository store.UserRepository

	// sessionCache mirrors live sessions for fast authentication. It may
	// miss; the user row is authoritative.
	sessionCache store.SessionCache

	// users performs registration, which follows the user creation rules.
	users UserService

	// validator checks login credentials.
	validator validators.Validator

	passwords passwordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now returns the current time; replaced in tests.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given storage and
// populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	sessionCache store.SessionCache,
	users UserService,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		sessionCache:   sessionCache,
		users:          users,
		validator:      validator,
		passwords:      newPasswordHasher(cfg.BcryptCost),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account with the same rules as
// [UserService.CreateUser].
func (a *authService) RegisterUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	return a.users.CreateUser(ctx, payload)
}

// Login authenticates a user by email and password and starts a new session.
// A previous session of the same user is revoked.
//
// Returns the issued token or:
//   - [validators.ErrValidation] when email or password is missing.
//   - [ErrInvalidCredentials] if the email is unknown or the password is wrong.
//   - [ErrInactiveUser] if the credentials match an inactive account.
//   - A wrapped error if the token cannot be issued or stored.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, *credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.passwords.matches(user.Password, *credentials.Password) {
		log.Info().Str("func", "*authService.Login").Str("id", user.ID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	if !user.IsActive() {
		return models.Token{}, ErrInactiveUser
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error creating token")
		return models.Token{}, err
	}

	if user.Token != "" {
		a.dropCachedSession(ctx, user.Token)
	}

	if err = a.userRepository.SetToken(ctx, user.ID, token.SignedString, token.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("id", user.ID).Msg("error storing token")
		return models.Token{}, fmt.Errorf("error storing token: %w", err)
	}

	a.cacheSession(ctx, token)

	return token, nil
}

// Logout ends the session of userID. The token is cleared from the user row
// and from the session cache.
func (a *authService) Logout(ctx context.Context, userID, token string) error {
	err := a.userRepository.ClearToken(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Str("id", userID).Msg("error clearing token")
		return fmt.Errorf("error clearing token: %w", err)
	}

	a.dropCachedSession(ctx, token)
	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate verifies tokenString and checks that it is still the stored
// session of its user, so tokens revoked by logout or a newer login are
// rejected with [ErrTokenIsExpiredOrInvalid].
//
// The session cache is consulted first; on a miss the user row decides and a
// live session is cached again.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Token{}, err
	}

	userID, err := a.sessionCache.GetSession(ctx, tokenString)
	switch {
	case err == nil && userID == token.UserID:
		return token, nil
	case err != nil && !errors.Is(err, store.ErrSessionNotFound):
		log.Warn().Err(err).Str("func", "*authService.Authenticate").Msg("session cache lookup failed")
	}

	user, err := a.userRepository.GetUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by id failed")
		return models.Token{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if user.Token == "" || user.Token != tokenString {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	a.cacheSession(ctx, token)

	return token, nil
}

// ClearExpiredSessions clears the stored token of every user whose session
// has expired.
func (a *authService) ClearExpiredSessions(ctx context.Context) (int64, error) {
	cleared, err := a.userRepository.ClearExpiredTokens(ctx, a.now())
	if err != nil {
		return 0, fmt.Errorf("error clearing expired sessions: %w", err)
	}
	return cleared, nil
}

// cacheSession stores token in the session cache for its remaining lifetime.
// Cache failures are logged only.
func (a *authService) cacheSession(ctx context.Context, token models.Token) {
	if err := a.sessionCache.SaveSession(ctx, token.SignedString, token.UserID, token.TTL(a.now())); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*authService.cacheSession").Msg("error caching session")
	}
}

func (a *authService) dropCachedSession(ctx context.Context, tokenString string) {
	if err := a.sessionCache.DeleteSession(ctx, tokenString); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*authService.dropCachedSession").Msg("error deleting cached session")
	}
}
