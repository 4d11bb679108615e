// Package ids mints opaque identifiers for ledger records.
package ids

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces a new unique identifier on every call.
type Generator interface {
	NewID() string
}

// UUID generates random UUIDv4 strings (36 characters).
type UUID struct{}

// NewID returns a random UUID string.
func (UUID) NewID() string {
	return uuid.New().String()
}

// Sequence is a deterministic generator: prefix-000001, prefix-000002, ...
// Useful in tests where ids have to be predictable.
type Sequence struct {
	Prefix string

	mu sync.Mutex
	n  int
}

// NewID returns the next id in the sequence.
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%06d", s.Prefix, s.n)
}
