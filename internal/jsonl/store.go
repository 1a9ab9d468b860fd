// Package jsonl implements the JSONL snapshot backend for the rolodex
// contact manager. The whole book is written as one record per line with
// atomic temp-file, fsync, rename persistence.
package jsonl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dukaforge/rolodex/pkg/types"
)

// Store implements types.Store over a single JSONL snapshot file.
type Store struct {
	mu       sync.Mutex
	attached bool
	config   types.Config
}

// NewStore creates a new JSONL store. The store is not attached; call
// Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach validates the config and creates the data directory.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	s.config = config
	s.attached = true
	return nil
}

// Detach releases the store. Idempotent: multiple calls succeed.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = false
	return nil
}

// Load reads the snapshot file and rehydrates the book. A missing file
// yields an empty book. Lines that are not valid JSON or do not decode to
// a valid record are skipped.
func (s *Store) Load() (*types.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	book := types.NewBook()
	path := s.snapshotPath()
	lines, err := readLines(path)
	if err != nil {
		if os.IsNotExist(err) {
			return book, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	for _, line := range lines {
		record, err := decodeRecord(line)
		if err != nil {
			// Skip records that fail validation on the way in; the
			// invariant is that the book never holds invalid entries.
			continue
		}
		book.AddRecord(record)
	}
	return book, nil
}

// Save writes the entire book to the snapshot file, replacing any
// previous snapshot atomically.
func (s *Store) Save(book *types.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	records := book.Records()
	lines := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal record %q: %w", r.Name, err)
		}
		lines = append(lines, data)
	}
	return writeLines(s.snapshotPath(), lines)
}

func (s *Store) snapshotPath() string {
	return filepath.Join(s.config.DataDir, s.config.Snapshot())
}

// decodeRecord unmarshals one snapshot line and re-validates every field,
// so a hand-edited snapshot cannot smuggle invalid values into the book.
func decodeRecord(line json.RawMessage) (*types.Record, error) {
	var r types.Record
	if err := json.Unmarshal(line, &r); err != nil {
		return nil, err
	}
	name, err := types.NewName(r.Name.String())
	if err != nil {
		return nil, err
	}
	r.Name = name
	for _, p := range r.Phones {
		if _, err := types.NewPhone(p.String()); err != nil {
			return nil, err
		}
	}
	if r.Phones == nil {
		r.Phones = []types.Phone{}
	}
	return &r, nil
}
