// Package memory provides an in-process implementation of storage.BlobStore.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mmynk/billbook/internal/storage"
)

var _ storage.BlobStore = (*Store)(nil)

// Store keeps blobs in a map. Contents are lost when the process exits.
type Store struct {
	mu    sync.Mutex
	blobs map[string]storage.Blob

	// FailSave, when set, is returned by every Save call.
	FailSave error
}

// New creates an empty Store.
func New() *Store {
	return &Store{blobs: make(map[string]storage.Blob)}
}

// Load returns a copy of the blob under key.
func (s *Store) Load(_ context.Context, key string) (storage.Blob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[key]
	if !ok {
		return storage.Blob{}, fmt.Errorf("%w: %s", storage.ErrBlobNotFound, key)
	}
	return storage.Blob{Version: b.Version, Data: append([]byte(nil), b.Data...)}, nil
}

// Save stores a copy of blob under key.
func (s *Store) Save(_ context.Context, key string, blob storage.Blob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		return s.FailSave
	}
	s.blobs[key] = storage.Blob{Version: blob.Version, Data: append([]byte(nil), blob.Data...)}
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
