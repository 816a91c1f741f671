// Package database owns the sqlite store: opening the file, creating the
// schema, and closing the handle on shutdown.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aTrapDeer/portfolio-api/internal/models"
)

// Open connects to the sqlite database at path, creating the file and any
// parent directories on first run.
func Open(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

// Migrate creates each table if it does not already exist. Safe to call on
// every start. Tables are created one at a time, so a failure can leave
// earlier tables in place; the error names the model whose statement failed.
func Migrate(db *gorm.DB) error {
	for _, m := range []struct {
		name  string
		model any
	}{
		{"projects", &models.Project{}},
		{"skills", &models.Skill{}},
		{"contact_messages", &models.ContactMessage{}},
		{"blog_posts", &models.BlogPost{}},
	} {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("create %s table: %w", m.name, err)
		}
	}
	return nil
}

// Close releases the underlying connection. A nil db is a no-op, and close
// errors are logged rather than returned so shutdown never fails on them.
func Close(db *gorm.DB, log zerolog.Logger) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn().Err(err).Msg("retrieving database handle for close")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("closing database")
	}
}
