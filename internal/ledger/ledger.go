// Package ledger is the single source of truth for billing records.
//
// A Store holds the record set in memory, most recent insertion first, and
// writes the whole set as one versioned blob after every mutation. Reads
// never touch storage.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mmynk/billbook/internal/calculator"
	"github.com/mmynk/billbook/internal/ids"
	"github.com/mmynk/billbook/internal/models"
	"github.com/mmynk/billbook/internal/storage"
)

const (
	// StorageKey is the fixed key the record set is stored under.
	StorageKey = "h5-billing-store"

	// SchemaVersion is the blob version this package reads and writes.
	// A stored blob with any other version is discarded and reseeded.
	SchemaVersion = 1

	// maxIDAttempts bounds retries when the generator returns an id in use.
	maxIDAttempts = 8
)

var (
	// ErrRecordNotFound is returned by Upsert when an id matches no record.
	ErrRecordNotFound = errors.New("record not found")

	// ErrPersist wraps any failure to write the record set. The in-memory
	// state is left at the last successfully written snapshot.
	ErrPersist = errors.New("failed to persist records")
)

// persistedState is the JSON layout of the blob payload.
type persistedState struct {
	Records []models.BillRecord `json:"records"`
}

// Store owns the billing record collection.
// Its methods are safe to call from multiple goroutines, although the
// ledger is designed around a single logical actor.
type Store struct {
	mu      sync.Mutex
	records []models.BillRecord

	blobs  storage.BlobStore
	key    string
	ids    ids.Generator
	now    func() time.Time
	logger *slog.Logger
	seed   bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(gen ids.Generator) Option {
	return func(s *Store) { s.ids = gen }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithoutSeed makes a missing or outdated blob load as an empty ledger
// instead of the sample dataset.
func WithoutSeed() Option {
	return func(s *Store) { s.seed = false }
}

// Open loads the record set from blobs, seeding it when the stored version
// is absent or does not match SchemaVersion.
func Open(ctx context.Context, blobs storage.BlobStore, opts ...Option) (*Store, error) {
	s := &Store{
		blobs:  blobs,
		key:    StorageKey,
		ids:    ids.UUID{},
		now:    time.Now,
		logger: slog.Default(),
		seed:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "ledger")

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	blob, err := s.blobs.Load(ctx, s.key)
	switch {
	case errors.Is(err, storage.ErrBlobNotFound):
		s.logger.Info("No stored ledger found", "key", s.key)
		return s.reset(ctx)
	case err != nil:
		return fmt.Errorf("failed to load ledger: %w", err)
	case blob.Version != SchemaVersion:
		s.logger.Warn("Stored ledger version mismatch, discarding",
			"key", s.key,
			"stored_version", blob.Version,
			"expected_version", SchemaVersion,
		)
		return s.reset(ctx)
	}

	var state persistedState
	if err := json.Unmarshal(blob.Data, &state); err != nil {
		return fmt.Errorf("failed to decode ledger: %w", err)
	}
	s.records = state.Records
	if s.records == nil {
		s.records = []models.BillRecord{}
	}
	s.logger.Info("Ledger loaded", "key", s.key, "records", len(s.records))
	return nil
}

// reset replaces the stored ledger with the sample dataset (or nothing).
func (s *Store) reset(ctx context.Context) error {
	next := []models.BillRecord{}
	if s.seed {
		next = SampleRecords(s.now(), s.ids)
	}
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.logger.Info("Ledger initialized", "key", s.key, "seeded", s.seed, "records", len(next))
	return nil
}

// Upsert creates a record when input.ID is empty, otherwise writes the
// supplied fields of input over the record with that id. Fields left nil
// keep their stored value. A create with any field nil returns
// models.ErrMissingField.
//
// New records go to the front of the iteration order with
// CreatedAt == UpdatedAt. Updated records keep their position and CreatedAt;
// UpdatedAt strictly increases. An id that matches nothing returns
// ErrRecordNotFound with no state change.
func (s *Store) Upsert(ctx context.Context, input models.UpsertInput) (models.BillRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.ID == "" {
		return s.create(ctx, input)
	}
	return s.update(ctx, input)
}

func (s *Store) create(ctx context.Context, input models.UpsertInput) (models.BillRecord, error) {
	if missing := input.Missing(); len(missing) > 0 {
		return models.BillRecord{}, fmt.Errorf("%w: %s", models.ErrMissingField, strings.Join(missing, ", "))
	}

	id, err := s.mintID()
	if err != nil {
		return models.BillRecord{}, err
	}

	now := s.now().UnixMilli()
	record := input.Apply(models.BillRecord{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	})

	next := make([]models.BillRecord, 0, len(s.records)+1)
	next = append(next, record)
	next = append(next, s.records...)
	if err := s.commit(ctx, next); err != nil {
		return models.BillRecord{}, err
	}

	s.logger.Info("Record created",
		"record_id", record.ID,
		"month", record.Month,
		"direction", record.Direction,
		"amount", record.Amount.String(),
	)
	return record, nil
}

func (s *Store) update(ctx context.Context, input models.UpsertInput) (models.BillRecord, error) {
	idx := s.indexOf(input.ID)
	if idx < 0 {
		return models.BillRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, input.ID)
	}

	record := input.Apply(s.records[idx])
	record.UpdatedAt = max(s.now().UnixMilli(), record.UpdatedAt+1)

	next := slices.Clone(s.records)
	next[idx] = record
	if err := s.commit(ctx, next); err != nil {
		return models.BillRecord{}, err
	}

	s.logger.Info("Record updated",
		"record_id", record.ID,
		"month", record.Month,
		"direction", record.Direction,
		"amount", record.Amount.String(),
	)
	return record, nil
}

// Delete removes the record with id. An unknown id is a silent no-op and
// issues no write.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("Delete of unknown record ignored", "record_id", id)
		return nil
	}

	next := slices.Delete(slices.Clone(s.records), idx, idx+1)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.logger.Info("Record deleted", "record_id", id)
	return nil
}

// RecordsForMonth returns a snapshot of the records of month in store order.
func (s *Store) RecordsForMonth(month string) []models.BillRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculator.FilterMonth(s.records, month)
}

// TotalsForMonth sums the amounts of month by direction.
func (s *Store) TotalsForMonth(month string) models.MonthTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculator.MonthTotals(s.records, month)
}

// Summary returns the totals and records of month from a single snapshot.
func (s *Store) Summary(month string) models.MonthSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := calculator.MonthTotals(s.records, month)
	return models.MonthSummary{
		Month:           month,
		UpstreamTotal:   totals.UpstreamTotal,
		DownstreamTotal: totals.DownstreamTotal,
		Records:         calculator.FilterMonth(s.records, month),
	}
}

// TotalsByMonth returns the totals of every month holding records.
func (s *Store) TotalsByMonth() map[string]models.MonthTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculator.TotalsByMonth(s.records)
}

// GrandTotals sums every record regardless of month.
func (s *Store) GrandTotals() models.MonthTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculator.GrandTotals(s.records)
}

// Records returns a snapshot of every record in store order.
func (s *Store) Records() []models.BillRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.BillRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Months returns the distinct months holding records, newest first.
func (s *Store) Months() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculator.Months(s.records)
}

// commit writes next as the whole record set, then makes it current.
// Callers must hold s.mu.
func (s *Store) commit(ctx context.Context, next []models.BillRecord) error {
	data, err := json.Marshal(persistedState{Records: next})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := s.blobs.Save(ctx, s.key, storage.Blob{Version: SchemaVersion, Data: data}); err != nil {
		s.logger.Error("Failed to persist ledger", "key", s.key, "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.records = next
	return nil
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.records, func(r models.BillRecord) bool {
		return r.ID == id
	})
}

// mintID returns an id not used by any current record.
func (s *Store) mintID() (string, error) {
	for range maxIDAttempts {
		id := s.ids.NewID()
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique id after %d attempts", maxIDAttempts)
}
