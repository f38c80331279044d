package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the SQLite store, creating the parent data directory
// if it does not exist yet. Foreign key enforcement is enabled on the
// connection; the schema relies on it for referential integrity.
func Connect(cfg Config) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}

	busyTimeout := cfg.BusyTimeoutMillis
	if busyTimeout <= 0 {
		busyTimeout = 5000
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d", cfg.Path, busyTimeout)

	// Suppress GORM logging; the application logger reports outcomes.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Single-writer batch store. One connection avoids SQLITE_BUSY
	// contention between the writer and read-back queries.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(busyTimeout)*time.Millisecond)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
