// Package gormstore is the relational implementation of the storage
// contract, used in production. It owns schema creation and translates
// database errors into the storage taxonomy at this boundary, so callers
// never see driver-specific errors.
package gormstore

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

// Store implements the storage contract on top of a relational database.
type Store struct {
	db *gorm.DB
}

var _ storage.Store = (*Store)(nil)

// New wraps an existing gorm connection. The connection should be opened
// with TranslateError enabled so duplicate-key violations are detectable.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to the database named by driver ("postgres" or "mysql")
// and dsn.
func Open(driver, dsn string) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}

	log.Println("Database connection established")
	return New(db), nil
}

// Migrate creates or updates the schema. Safe to run repeatedly.
func (s *Store) Migrate() error {
	err := s.db.AutoMigrate(
		&models.User{},
		&models.Workspace{},
		&models.Task{},
		&models.TaskAssignee{},
		&models.TaskAttachment{},
		&models.VoiceNote{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// translate converts gorm errors into the storage taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storage.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &storage.ValidationError{Field: "unique", Reason: "duplicate value"}
	default:
		return fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}
}

// exists reports whether a row of model with the given id is present.
func (s *Store) exists(model any, id uint64) (bool, error) {
	var count int64
	if err := s.db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}
