package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/utils"
	"github.com/MKhiriev/go-user-posts/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.IDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewIDGenerator(),
	}
}

// CreateUser assigns a new identifier to user, persists it and returns the
// stored row.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.ids.Generate()

	var created models.User
	err := r.db.withRetry(ctx, func() (err error) {
		row := r.db.QueryRowContext(ctx, createUser,
			user.ID, user.FirstName, user.LastName, user.Email, user.Mobile,
			user.Username, user.UserType, user.Password, user.Status)
		created, err = scanUser(row)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, mapWriteError(err)
	}

	return created, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return r.getUser(ctx, "*userRepository.GetUserByID", getUserByID, id)
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) getUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.withRetry(ctx, func() (err error) {
		user, err = scanUser(r.db.QueryRowContext(ctx, query, arg))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers returns the users matching filter in creation order. An empty
// result is not an error.
func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var users []models.User
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		users = make([]models.User, 0)
		for rows.Next() {
			user, err := scanUser(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			users = append(users, user)
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// UpdateUser writes the non-nil fields of update and returns the stored row.
func (r *userRepository) UpdateUser(ctx context.Context, id string, update models.UserPayload) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.User{}, err
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	err = r.db.withRetry(ctx, func() (err error) {
		updated, err = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		return models.User{}, mapWriteError(err)
	}

	return updated, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	affected, err := r.db.exec(ctx, "*userRepository.DeleteUser", deleteUser, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	return r.db.exists(ctx, "*userRepository.EmailTaken", emailTaken, email, excludeID)
}

func (r *userRepository) UsernameTaken(ctx context.Context, username, excludeID string) (bool, error) {
	return r.db.exists(ctx, "*userRepository.UsernameTaken", usernameTaken, username, excludeID)
}

func (r *userRepository) SetToken(ctx context.Context, id, token string, expiresAt time.Time) error {
	affected, err := r.db.exec(ctx, "*userRepository.SetToken", setUserToken, id, token, expiresAt)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) ClearToken(ctx context.Context, id string) error {
	affected, err := r.db.exec(ctx, "*userRepository.ClearToken", clearUserToken, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.db.exec(ctx, "*userRepository.ClearExpiredTokens", clearExpiredTokens, now)
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Mobile,
		&user.Username,
		&user.UserType,
		&user.Password,
		&user.Status,
		&user.Token,
		&user.TokenExpiresAt,
	)
	return user, err
}
