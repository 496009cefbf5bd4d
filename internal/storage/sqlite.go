package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStorage keeps every key in a single-table SQLite database, the same
// way browsers back their local storage with SQLite.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)

	if err != nil {
		return nil, fmt.Errorf("error opening sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging sqlite db: %w", err)
	}

	schema := `
			CREATE TABLE IF NOT EXISTS storage (
				key   TEXT PRIMARY KEY,
				value TEXT NOT NULL
			);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) (string, error) {
	var value string

	query := `
			SELECT value FROM storage WHERE key = ?;
	`

	if err := s.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("error reading key %s: %w", key, err)
	}

	return value, nil
}

func (s *SQLiteStorage) Set(ctx context.Context, key string, value string) error {
	query := `
			INSERT INTO storage (key, value) VALUES (?, ?)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value;
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("error writing key %s: %w", key, err)
	}

	return nil
}

func (s *SQLiteStorage) Delete(ctx context.Context, key string) error {
	query := `
			DELETE FROM storage WHERE key = ?;
	`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("error deleting key %s: %w", key, err)
	}

	return nil
}

func (s *SQLiteStorage) Close() error { return s.db.Close() }
