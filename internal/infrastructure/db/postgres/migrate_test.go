package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreEmbedded(t *testing.T) {
	body, err := migrationsFS.ReadFile("migrations/00001_create_schema.sql")
	require.NoError(t, err)

	schema := string(body)
	assert.True(t, strings.HasPrefix(schema, "-- +goose Up"))
	for _, table := range []string{"users", "roles", "products", "orders", "order_items"} {
		assert.Contains(t, schema, "CREATE TABLE "+table+" (")
	}
}

func TestMigrate(t *testing.T) {
	db, _ := newMockDB(t)

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}
	require.NoError(t, Migrate(context.Background(), db.DB))
	assert.Equal(t, migrationsDir, gotDir)

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("dirty database")
	}
	err := Migrate(context.Background(), db.DB)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dirty database")
}
