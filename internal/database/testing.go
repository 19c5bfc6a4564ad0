package database

import (
	"fmt"

	"medingen/internal/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpenInMemory opens a private, migrated in-memory SQLite database with foreign
// keys enforced. Each call gets its own database.
func OpenInMemory() (*gorm.DB, error) {
	db, err := Open(config.DatabaseConfig{
		Driver:   "sqlite",
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.New().String()),
		LogLevel: "silent",
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
