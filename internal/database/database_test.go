package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := NewDatabase(ctx, "sqlite:///"+filepath.Join(t.TempDir(), "tm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.True(t, db.IsSQLite())
	assert.False(t, db.IsPostgres())
	require.NoError(t, db.Session(ctx).Exec("SELECT 1").Error)
}

func TestNewDatabase_InMemory(t *testing.T) {
	ctx := context.Background()
	db, err := NewDatabase(ctx, "sqlite:///:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// The pool is clamped to one connection, so every session sees the
	// same in-memory database.
	require.NoError(t, db.Session(ctx).Exec("CREATE TABLE pairs (id INTEGER PRIMARY KEY)").Error)
	require.NoError(t, db.Session(ctx).Exec("INSERT INTO pairs (id) VALUES (1)").Error)

	var count int64
	require.NoError(t, db.Session(ctx).Raw("SELECT COUNT(*) FROM pairs").Scan(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConfigurePool(t *testing.T) {
	ctx := context.Background()
	db, err := NewDatabase(ctx, "sqlite:///"+filepath.Join(t.TempDir(), "tm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.ConfigurePool(4, 2, time.Minute))
	require.NoError(t, db.Session(ctx).Exec("SELECT 1").Error)
}
