package db_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frontdoor/internal/db"
)

func TestMigrations(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(db.Migrations(), "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "00001_create_attribution_records.sql", files[0])

	body, err := fs.ReadFile(db.Migrations(), files[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "session_id    TEXT PRIMARY KEY")
}
