// Package sqlite implements the SQLite snapshot backend for the rolodex
// contact manager. The whole book is replaced inside one transaction on
// every save.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/rolodex/pkg/types"
)

// timeLayout is the storage format for timestamps.
const timeLayout = time.RFC3339Nano

// Store implements types.Store using a SQLite database file.
type Store struct {
	mu       sync.Mutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewStore creates a new SQLite store. The store is not attached; call
// Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach validates the config, creates the data directory, opens the
// database, and applies the schema.
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

	path := filepath.Join(config.DataDir, config.Snapshot())
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent: multiple calls succeed.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	s.attached = false
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	s.db = nil
	return nil
}

// Load reads all contacts and phones and rehydrates the book in stored
// insertion order. An empty database yields an empty book.
func (s *Store) Load() (*types.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query(
		`SELECT record_id, name, birthday, created_at, updated_at
		 FROM contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	book := types.NewBook()
	for rows.Next() {
		var (
			recordID, name       string
			birthday             sql.NullString
			createdAt, updatedAt string
		)
		if err := rows.Scan(&recordID, &name, &birthday, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		record, err := rehydrateRecord(recordID, name, birthday, createdAt, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("rehydrate contact %q: %w", name, err)
		}
		if err := s.loadPhones(record); err != nil {
			return nil, err
		}
		book.AddRecord(record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return book, nil
}

func (s *Store) loadPhones(record *types.Record) error {
	rows, err := s.db.Query(
		`SELECT phone FROM phones WHERE record_id = ? ORDER BY ordinal`,
		record.RecordID)
	if err != nil {
		return fmt.Errorf("query phones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var phone string
		if err := rows.Scan(&phone); err != nil {
			return fmt.Errorf("scan phone: %w", err)
		}
		p, err := types.NewPhone(phone)
		if err != nil {
			return fmt.Errorf("stored phone for %q: %w", record.Name, err)
		}
		record.Phones = append(record.Phones, p)
	}
	return rows.Err()
}

// Save replaces the entire snapshot with the given book inside one
// transaction.
func (s *Store) Save(book *types.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM phones`); err != nil {
		return fmt.Errorf("clear phones: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM contacts`); err != nil {
		return fmt.Errorf("clear contacts: %w", err)
	}

	for position, record := range book.Records() {
		var birthday any
		if record.Birthday != nil {
			birthday = record.Birthday.String()
		}
		_, err := tx.Exec(
			`INSERT INTO contacts (record_id, name, birthday, created_at, updated_at, position)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			record.RecordID, record.Name.String(), birthday,
			record.CreatedAt.UTC().Format(timeLayout),
			record.UpdatedAt.UTC().Format(timeLayout),
			position)
		if err != nil {
			return fmt.Errorf("insert contact %q: %w", record.Name, err)
		}
		for ordinal, phone := range record.Phones {
			_, err := tx.Exec(
				`INSERT INTO phones (record_id, ordinal, phone) VALUES (?, ?, ?)`,
				record.RecordID, ordinal, phone.String())
			if err != nil {
				return fmt.Errorf("insert phone for %q: %w", record.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func rehydrateRecord(recordID, name string, birthday sql.NullString, createdAt, updatedAt string) (*types.Record, error) {
	n, err := types.NewName(name)
	if err != nil {
		return nil, err
	}
	created, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	updated, err := time.Parse(timeLayout, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	record := &types.Record{
		RecordID:  recordID,
		Name:      n,
		Phones:    []types.Phone{},
		CreatedAt: created,
		UpdatedAt: updated,
	}
	if birthday.Valid {
		b, err := types.NewBirthday(birthday.String)
		if err != nil {
			return nil, err
		}
		record.Birthday = &b
	}
	return record, nil
}
