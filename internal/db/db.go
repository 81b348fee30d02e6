package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"punchclock/internal/models"
)

// Store is the storage handle passed to every command. Each command opens
// a Store, runs its statements, and closes it before exiting; nothing is
// cached between invocations.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at path and runs migrations.
func Open(path string) (*Store, error) {
	// Ensure the directory exists
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create punchclock directory: %w", err)
		}
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &Store{db: gdb}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// OpenDefault opens the database at $PUNCHCLOCK_DB, or
// ~/.punchclock/punchclock.db when unset.
func OpenDefault() (*Store, error) {
	path, err := defaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}
	return Open(path)
}

// defaultPath returns the path to the SQLite database file
func defaultPath() (string, error) {
	if path := os.Getenv("PUNCHCLOCK_DB"); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".punchclock", "punchclock.db"), nil
}

// migrate creates/updates the database schema
func (s *Store) migrate() error {
	return s.db.AutoMigrate(
		&models.Project{},
		&models.Session{},
		&models.Break{},
	)
}

// Close closes the database connection
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
