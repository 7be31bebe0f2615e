package database

import (
	"fmt"
	"os"
	"path/filepath"

	"rentadmin/internal/logger"
	"rentadmin/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager owns the embedded SQLite database handle for the process.
// It is constructed once at startup and passed to services explicitly.
type Manager struct {
	db *gorm.DB
}

// NewManager opens (creating if necessary) the SQLite database at path.
func NewManager(path string) (*Manager, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; keep the pool at one connection so
	// concurrent requests queue instead of failing with SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return &Manager{db: db}, nil
}

// Bootstrap creates the schema and seeds the sample catalog when the
// listings table is empty.
func (m *Manager) Bootstrap() error {
	logger.Get().Info("Bootstrapping database schema...")

	if err := m.db.AutoMigrate(&models.Listing{}, &models.AuditLog{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := m.seed(); err != nil {
		return fmt.Errorf("failed to seed listings: %w", err)
	}

	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the underlying database handle.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
