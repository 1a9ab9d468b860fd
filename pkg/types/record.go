package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record represents one contact: an immutable name, an ordered list of
// phones, and an optional birthday.
type Record struct {
	RecordID  string    `json:"record_id"`          // UUID v7, generated on creation.
	Name      Name      `json:"name"`               // Immutable once constructed.
	Phones    []Phone   `json:"phones"`             // Ordered; duplicates allowed.
	Birthday  *Birthday `json:"birthday,omitempty"` // nil until set.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecord creates a Record with the given name and no phones or birthday.
// Returns ErrInvalidName if the name is empty after trimming.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate record ID: %w", err)
	}
	now := time.Now()
	return &Record{
		RecordID:  id.String(),
		Name:      n,
		Phones:    []Phone{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AddPhone validates and appends a phone. Duplicate entries are not
// rejected; the same number may appear more than once.
// Returns ErrInvalidPhone on a malformed number.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, p)
	r.UpdatedAt = time.Now()
	return nil
}

// RemovePhone removes every entry equal to phone. No-op if absent.
func (r *Record) RemovePhone(phone string) {
	kept := r.Phones[:0]
	for _, p := range r.Phones {
		if p.String() != phone {
			kept = append(kept, p)
		}
	}
	if len(kept) != len(r.Phones) {
		r.Phones = kept
		r.UpdatedAt = time.Now()
	}
}

// EditPhone replaces the first entry equal to old with a validated new
// phone. The new value is validated before the list is searched, so an
// invalid replacement fails with ErrInvalidPhone even when old is absent.
// When old is not found the list is left unchanged and no error is returned.
func (r *Record) EditPhone(old, replacement string) error {
	p, err := NewPhone(replacement)
	if err != nil {
		return err
	}
	for i, existing := range r.Phones {
		if existing.String() == old {
			r.Phones[i] = p
			r.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

// FindPhone returns the stored phone equal to phone, and whether it was
// found.
func (r *Record) FindPhone(phone string) (Phone, bool) {
	for _, p := range r.Phones {
		if p.String() == phone {
			return p, true
		}
	}
	return "", false
}

// SetBirthday validates and sets the birthday, overwriting any previous
// value. Returns ErrInvalidDate on malformed input.
func (r *Record) SetBirthday(birthday string) error {
	b, err := NewBirthday(birthday)
	if err != nil {
		return err
	}
	r.Birthday = &b
	r.UpdatedAt = time.Now()
	return nil
}

// String renders the record for display:
// "Contact name: <name>, phones: <p1>; <p2>, birthday: <DD.MM.YYYY|No birthday>".
func (r *Record) String() string {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = p.String()
	}
	birthday := "No birthday"
	if r.Birthday != nil {
		birthday = r.Birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.Name, strings.Join(phones, "; "), birthday)
}
