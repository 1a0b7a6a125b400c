// Package testdb provides a shared test database helper for fast, realistic
// testing against an in-memory SQLite database.
package testdb

import (
	"context"
	"testing"

	"github.com/tmkit/tmkit/internal/database"
)

// New creates an in-memory SQLite database, closed when the test finishes.
// Schema creation is left to the store under test; NewTranslationStore
// migrates on construction, which is exactly the path worth exercising.
func New(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	if err != nil {
		t.Fatalf("testdb.New: open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// WithSchema creates an in-memory SQLite database and executes the given
// SQL statements to set up a custom schema.
func WithSchema(t *testing.T, statements ...string) database.Database {
	t.Helper()
	ctx := context.Background()
	db := New(t)
	for _, stmt := range statements {
		if err := db.Session(ctx).Exec(stmt).Error; err != nil {
			t.Fatalf("testdb.WithSchema: %v\nSQL: %s", err, stmt)
		}
	}
	return db
}
