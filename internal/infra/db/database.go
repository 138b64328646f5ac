package db

import (
	"database/sql"
	"fmt"
	"os"

	"lodgecancel/internal/pkg/config"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Connect opens the on-device SQLite file backing the cancellation intent
// store. One process owns the file, so a single connection is enough and
// keeps every statement serialized.
func Connect(cfg config.StoreConfig) (*sql.DB, func(), error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", cfg.DBPath())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping store: %w", err)
	}

	db.SetMaxOpenConns(1)

	cleanup := func() {
		if err := db.Close(); err != nil {
			fmt.Printf("Error closing store: %v\n", err)
		}
	}

	return db, cleanup, nil
}
