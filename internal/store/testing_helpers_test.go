package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/utils"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := newDB(conn, logger.Nop())
	db.retryDelays = []time.Duration{time.Millisecond, time.Millisecond}
	return db, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop(), ids: utils.NewIDGenerator()}, mock
}

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &postRepository{db: db, logger: logger.Nop(), ids: utils.NewIDGenerator()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}
