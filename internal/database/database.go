// Package database is the move ledger: a SQLite record of every file yearsort
// has moved, used for per-year statistics.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// LedgerDB is the handle for the move ledger.
type LedgerDB struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// OpenPath opens or creates the ledger at path.
func OpenPath(path string) (*LedgerDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return setup(db, path)
}

// OpenInMemory opens a throwaway ledger for tests.
func OpenInMemory() (*LedgerDB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	// Every pooled connection would otherwise get its own empty database.
	db.SetMaxOpenConns(1)
	return setup(db, ":memory:")
}

func setup(db *sql.DB, path string) (*LedgerDB, error) {
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &LedgerDB{db: db, path: path}, nil
}

func (l *LedgerDB) Close() error {
	return l.db.Close()
}

func (l *LedgerDB) Path() string {
	return l.path
}
