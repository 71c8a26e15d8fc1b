// Package history keeps the calculations of each email over a storage.KV.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/matrix"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/storage"
)

const keyPrefix = "calculations_history_"

// Record is one saved calculation.
type Record struct {
	ID        uuid.UUID     `json:"id"`
	Result    matrix.Result `json:"result"`
	BirthDate string        `json:"birth_date"`
	CreatedAt time.Time     `json:"created_at"`
}

func NewRecord(r matrix.Result, now time.Time) Record {
	return Record{
		ID:        uuid.New(),
		Result:    r,
		BirthDate: r.FormatBirthDate(),
		CreatedAt: now.UTC(),
	}
}

// Store appends and reads per-email history. A positive max trims the
// oldest records on append.
type Store struct {
	kv  storage.KV
	max int
	mu  sync.Mutex
}

func NewStore(kv storage.KV, max int) *Store {
	if max < 0 {
		max = 0
	}
	return &Store{kv: kv, max: max}
}

// Key is the storage key holding the history of email.
func Key(email string) string {
	return keyPrefix + access.NormalizeEmail(email)
}

func (s *Store) Append(ctx context.Context, email string, rec Record) error {
	if access.NormalizeEmail(email) == "" {
		return access.ErrEmailRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, email)
	if err != nil {
		return err
	}
	records = append(records, rec)
	if s.max > 0 && len(records) > s.max {
		records = records[len(records)-s.max:]
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.kv.Set(ctx, Key(email), string(raw)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Load returns the history in insertion order. Missing or malformed
// history is empty.
func (s *Store) Load(ctx context.Context, email string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, email)
}

// Recent returns up to limit records, newest first. A limit of 0 returns
// all of them.
func (s *Store) Recent(ctx context.Context, email string, limit int) ([]Record, error) {
	records, err := s.Load(ctx, email)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) Clear(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(ctx, Key(email)); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, email string) ([]Record, error) {
	raw, err := s.kv.Get(ctx, Key(email))
	if errors.Is(err, storage.ErrNotFound) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		slog.Warn("malformed history discarded", "email", access.NormalizeEmail(email), "action", "history_load", "error", err)
		return []Record{}, nil
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}
