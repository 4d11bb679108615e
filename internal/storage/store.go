// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by Load when nothing is stored under a key.
var ErrBlobNotFound = errors.New("blob not found")

// Blob is one named, versioned value. Data is opaque to the store.
type Blob struct {
	// Version is the schema version the writer used for Data.
	Version int

	// Data is the serialized payload.
	Data []byte
}

// BlobStore defines a local key-value store holding whole blobs.
// This abstraction allows swapping storage backends (SQLite, in-memory)
// without changing the ledger.
type BlobStore interface {
	// Load returns the blob stored under key.
	// Returns ErrBlobNotFound if the key has never been written.
	Load(ctx context.Context, key string) (Blob, error)

	// Save replaces the blob under key. The replacement is atomic: a reader
	// sees either the previous blob or the new one, never a mix.
	Save(ctx context.Context, key string, blob Blob) error

	// Close releases any resources held by the store.
	Close() error
}
