package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/williamjames2004/sjcaisymposium/internal/models"
)

// Database wraps the gorm connection.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the sqlite database and migrates the schema
func NewDatabase(dbPath string) (*Database, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return database, nil
}

// Migrate runs the schema migration. The unique index on
// (leader_id, register_number) is the last-resort guard against concurrent
// registrations of the same student.
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(
		&models.Leader{},
		&models.Participant{},
		&models.College{},
		&models.Admin{},
	)
}

// Close closes the underlying sql connection.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
