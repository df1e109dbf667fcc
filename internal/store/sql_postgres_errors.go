package store

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failed statement is
// worth repeating.
type ErrorClassification int

const (
	// NonRetryable is the zero value and the answer for anything unknown.
	NonRetryable ErrorClassification = iota
	Retryable
)

// uniqueConstraints maps the names of the unique constraints created by the
// migrations to the error reported when they are violated.
var uniqueConstraints = map[string]error{
	"users_email_key":    ErrEmailAlreadyExists,
	"users_username_key": ErrUsernameAlreadyExists,
	"posts_title_key":    ErrTitleAlreadyExists,
}

// PostgresErrorClassifier treats broken connections, class 08 connection
// exceptions, class 40 transaction rollbacks and a server that is shutting
// down or starting up as transient. Everything else, constraint violations
// included, is permanent.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}
	if errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	pgErr := postgresError(err)
	if pgErr == nil {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.AdminShutdown,
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

func postgresError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

// mapWriteError translates a failed INSERT or UPDATE into a domain error.
// Unique violations of a known constraint become the matching sentinel and
// an over-long value becomes [ErrValueTooLong]. Everything else is wrapped
// into [ErrExecutingQuery].
func mapWriteError(err error) error {
	pgErr := postgresError(err)
	switch {
	case pgErr == nil:
	case pgErr.Code == pgerrcode.UniqueViolation:
		if mapped, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return mapped
		}
	case pgErr.Code == pgerrcode.StringDataRightTruncationDataException:
		return fmt.Errorf("%w: column %s", ErrValueTooLong, pgErr.ColumnName)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
