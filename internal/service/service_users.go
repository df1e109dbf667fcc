package service

import (
	"context"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/MKhiriev/go-user-posts/internal/config"
	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/store"
	"github.com/MKhiriev/go-user-posts/internal/utils"
	"github.com/MKhiriev/go-user-posts/internal/validators"
	"github.com/MKhiriev/go-user-posts/models"
)

// MinSearchLength is the shortest accepted non-empty search term.
const MinSearchLength = 3

// userService is the concrete implementation of [UserService].
type userService struct {
	// userRepository persists users.
	userRepository store.UserRepository

	// sessionCache holds the sessions of logged in users.
	sessionCache store.SessionCache

	// validator checks payloads against their `validate` tags.
	validator validators.Validator

	passwords passwordHasher

	logger *logger.Logger
}

// NewUserService constructs a [UserService]. Passwords are hashed with the
// bcrypt cost from cfg.
func NewUserService(userRepository store.UserRepository, sessionCache store.SessionCache, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		sessionCache:   sessionCache,
		validator:      validator,
		passwords:      newPasswordHasher(cfg.BcryptCost),
		logger:         logger,
	}
}

// ListUsers returns the users matching filter.
//
// Returns [ErrSearchTooShort] for a search term of one or two characters.
// An empty result is not an error.
func (s *userService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if err := checkSearch(filter.Search); err != nil {
		return nil, err
	}

	users, err := s.userRepository.ListUsers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// GetUser returns the user with the given id or [store.ErrUserNotFound].
func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	if !utils.IsValidID(id) {
		return models.User{}, store.ErrUserNotFound
	}
	return s.userRepository.GetUserByID(ctx, id)
}

// CreateUser validates payload, checks uniqueness and the username policy,
// hashes the password and persists the user.
//
// Errors, in the order they are checked:
//   - [validators.ErrValidation] (as [*validators.FieldError]) for the first
//     failing field.
//   - [store.ErrEmailAlreadyExists], [store.ErrUsernameAlreadyExists].
//   - [validators.ErrInvalidUsername].
//   - [ErrPasswordHashing] or a storage error.
func (s *userService) CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.User{}, err
	}
	user := payload.ToUser()

	if err := s.checkUnique(ctx, user.Email, user.Username, ""); err != nil {
		return models.User{}, err
	}

	if !validators.IsValidUsername(user.Username) {
		return models.User{}, validators.ErrInvalidUsername
	}

	hashed, err := s.passwords.hash(user.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		return models.User{}, err
	}
	user.Password = hashed

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateUser applies the set fields of payload to the user with the given
// id. Only fields present in payload are validated; the username that
// results from the update must satisfy the username policy.
//
// Errors, in the order they are checked:
//   - [store.ErrUserNotFound].
//   - [ErrNoFieldsToUpdate] when payload is empty.
//   - [store.ErrEmailAlreadyExists], [store.ErrUsernameAlreadyExists] when
//     another user owns the value.
//   - [ErrInvalidUserType], [ErrInvalidStatus].
//   - [validators.ErrValidation] for the first failing present field.
//   - [validators.ErrInvalidUsername].
func (s *userService) UpdateUser(ctx context.Context, id string, payload models.UserPayload) (models.User, error) {
	log := logger.FromContext(ctx)

	current, err := s.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if payload.IsEmpty() {
		return models.User{}, ErrNoFieldsToUpdate
	}

	if err = s.checkUnique(ctx, deref(payload.Email), deref(payload.Username), id); err != nil {
		return models.User{}, err
	}

	if payload.UserType != nil && !oneOf(*payload.UserType, models.UserTypeUser, models.UserTypeAdmin) {
		return models.User{}, ErrInvalidUserType
	}
	if payload.Status != nil && !oneOf(*payload.Status, models.StatusActive, models.StatusInactive) {
		return models.User{}, ErrInvalidStatus
	}

	if err = s.validator.Validate(ctx, payload, payload.Fields()...); err != nil {
		return models.User{}, err
	}

	if !validators.IsValidUsername(payload.Apply(current).Username) {
		return models.User{}, validators.ErrInvalidUsername
	}

	if payload.Password != nil {
		hashed, err := s.passwords.hash(*payload.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("error hashing password")
			return models.User{}, err
		}
		payload.Password = &hashed
	}

	updated, err := s.userRepository.UpdateUser(ctx, id, payload)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Str("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the user and drops its cached session first, so the
// token it held stops authenticating together with the row. The user is kept
// when the session can not be dropped.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if !utils.IsValidID(id) {
		return store.ErrUserNotFound
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Token != "" {
		if err = s.sessionCache.DeleteSession(ctx, user.Token); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*userService.DeleteUser").Str("id", id).Msg("error dropping cached session")
			return fmt.Errorf("error dropping cached session: %w", err)
		}
	}

	return s.userRepository.DeleteUser(ctx, id)
}

// checkUnique reports a conflict when another user than excludeID owns
// email or username. Empty values are not checked.
func (s *userService) checkUnique(ctx context.Context, email, username, excludeID string) error {
	if email != "" {
		taken, err := s.userRepository.EmailTaken(ctx, email, excludeID)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if taken {
			return store.ErrEmailAlreadyExists
		}
	}

	if username != "" {
		taken, err := s.userRepository.UsernameTaken(ctx, username, excludeID)
		if err != nil {
			return fmt.Errorf("error checking username: %w", err)
		}
		if taken {
			return store.ErrUsernameAlreadyExists
		}
	}

	return nil
}

func checkSearch(search string) error {
	if search != "" && utf8.RuneCountInString(search) < MinSearchLength {
		return ErrSearchTooShort
	}
	return nil
}

func oneOf(value string, allowed ...string) bool {
	return slices.Contains(allowed, value)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
