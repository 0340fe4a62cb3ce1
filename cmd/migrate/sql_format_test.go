package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLMigrations_HaveGooseDirectives(t *testing.T) {
	dir := repoMigrationsDir(t)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)

		s := string(b)
		assert.Contains(t, s, "-- +goose Up", "%s missing Up directive", e.Name())
		assert.Contains(t, s, "-- +goose Down", "%s missing Down directive", e.Name())
		assert.Less(t, strings.Index(s, "-- +goose Up"), strings.Index(s, "-- +goose Down"),
			"%s: Up must precede Down", e.Name())
	}
}

func TestCoreTablesMigration_CreatesExpectedSchema(t *testing.T) {
	b, err := os.ReadFile(filepath.Join(repoMigrationsDir(t), "00001_create_core_tables.sql"))
	require.NoError(t, err)

	s := string(b)
	for _, table := range []string{"users", "catalog_entries", "shelf_entries"} {
		assert.Contains(t, s, "CREATE TABLE "+table, "missing table %s", table)
	}
	// Uniqueness the stores rely on for conflict-based inserts.
	assert.Contains(t, s, "UNIQUE (user_id, catalog_entry_id)")
}
