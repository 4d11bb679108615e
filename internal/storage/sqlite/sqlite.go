// Package sqlite provides a SQLite-backed implementation of the storage.BlobStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/billbook/internal/storage"
)

// Ensure SQLiteStore implements storage.BlobStore
var _ storage.BlobStore = (*SQLiteStore)(nil)

// SQLiteStore implements storage.BlobStore using a single key-value table.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// A single writer is all this store ever has.
	db.SetMaxOpenConns(1)

	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load retrieves the blob stored under key.
func (s *SQLiteStore) Load(ctx context.Context, key string) (storage.Blob, error) {
	var blob storage.Blob
	err := s.db.QueryRowContext(ctx,
		"SELECT version, value FROM kv_store WHERE key = ?",
		key,
	).Scan(&blob.Version, &blob.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Blob{}, fmt.Errorf("%w: %s", storage.ErrBlobNotFound, key)
	}
	if err != nil {
		return storage.Blob{}, fmt.Errorf("failed to load blob: %w", err)
	}
	return blob, nil
}

// Save writes blob under key, replacing any previous value in one statement.
func (s *SQLiteStore) Save(ctx context.Context, key string, blob storage.Blob) error {
	data := blob.Data
	if data == nil {
		data = []byte{}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_store (key, version, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   version = excluded.version,
		   value = excluded.value,
		   updated_at = excluded.updated_at`,
		key, blob.Version, data, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save blob: %w", err)
	}
	return nil
}
