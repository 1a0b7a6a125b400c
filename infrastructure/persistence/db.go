package persistence

import (
	"errors"
	"fmt"

	"github.com/tmkit/tmkit/internal/database"
)

// ErrStorageInit indicates schema creation failed against the backing
// engine. Fatal for the store instance that hit it.
var ErrStorageInit = errors.New("failed to initialize translation memory storage")

// AutoMigrate creates or updates the sources and targets tables. Idempotent,
// safe to run on every startup.
func AutoMigrate(db database.Database) error {
	if err := db.GORM().AutoMigrate(
		&SourceModel{},
		&TargetModel{},
	); err != nil {
		return errors.Join(ErrStorageInit, fmt.Errorf("auto migrate: %w", err))
	}
	return nil
}
