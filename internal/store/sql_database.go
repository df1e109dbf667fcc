package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/migrations"
)

// defaultRetryDelays are the pauses between attempts of a retryable
// operation. Their count is the number of retries.
var defaultRetryDelays = []time.Duration{
	100 * time.Millisecond,
	300 * time.Millisecond,
	700 * time.Millisecond,
}

// DB wraps *sql.DB with error classification and bounded retries of
// transient failures.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	retryDelays        []time.Duration
	logger             *logger.Logger
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		retryDelays:        defaultRetryDelays,
		logger:             log,
	}
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}

	db.logger.Info().Ints64("versions", applied).Msg("schema migrations applied")
	return nil
}

// withRetry runs op and repeats it while it fails with an error classified
// as [Retryable], up to len(db.retryDelays) more times.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for attempt := 0; err != nil && attempt < len(db.retryDelays); attempt++ {
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt+1).Msg("retrying database operation")

		timer := time.NewTimer(db.retryDelays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}

		err = op()
	}

	return err
}

// exists runs a SELECT EXISTS query.
func (db *DB) exists(ctx context.Context, funcName, query string, args ...any) (bool, error) {
	var found bool
	err := db.withRetry(ctx, func() error {
		return db.QueryRowContext(ctx, query, args...).Scan(&found)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error checking existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return found, nil
}

// exec runs a statement and returns the number of affected rows.
func (db *DB) exec(ctx context.Context, funcName, query string, args ...any) (int64, error) {
	var affected int64
	err := db.withRetry(ctx, func() error {
		result, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error executing query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return affected, nil
}
