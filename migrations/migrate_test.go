// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: the first statement goose issues fails
	applied, err := Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Nil(t, applied)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	applied, err := Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Nil(t, applied)
	assert.ErrorIs(t, err, errNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)

	tests := []struct {
		file       string
		constraint []string
	}{
		{file: "00001_create_users.sql", constraint: []string{"users_email_key", "users_username_key"}},
		{file: "00002_create_posts.sql", constraint: []string{"posts_title_key"}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			body, err := fs.ReadFile(embedMigrations, tt.file)
			require.NoError(t, err)

			text := string(body)
			assert.True(t, strings.HasPrefix(text, "-- +goose Up"))
			assert.Contains(t, text, "-- +goose Down")
			for _, c := range tt.constraint {
				assert.Contains(t, text, c)
			}
		})
	}
}
