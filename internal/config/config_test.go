package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIREBASE_PROJECT_ID")
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "alidash-test")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/alidash?sslmode=disable")
	t.Setenv("SOURCE_COLLECTION", "")
	t.Setenv("MIGRATE_USERS_PER_MINUTE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "users", cfg.SourceCollection)
	assert.Equal(t, 30, cfg.UsersPerMinute)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "alidash-test")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/alidash?sslmode=disable")
	t.Setenv("SOURCE_COLLECTION", "usuarios")
	t.Setenv("MIGRATE_USERS_PER_MINUTE", "120")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "usuarios", cfg.SourceCollection)
	assert.Equal(t, 120, cfg.UsersPerMinute)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "alidash-test")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/alidash?sslmode=disable")
	t.Setenv("MIGRATE_USERS_PER_MINUTE", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.UsersPerMinute)
}
