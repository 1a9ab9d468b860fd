// Validated field value types. Each constructor validates its input and the
// resulting value is an immutable carrier; invalid input never produces a
// value.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// BirthdayLayout is the wire and display format for birthdays.
const BirthdayLayout = "02.01.2006"

// Name is a contact name. The zero value is invalid; use NewName.
type Name string

// NewName validates and returns a Name. Leading and trailing whitespace is
// trimmed; the trimmed value must be non-empty.
// Returns ErrInvalidName otherwise.
func NewName(value string) (Name, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("invalid name %q: %w", value, ErrInvalidName)
	}
	return Name(trimmed), nil
}

func (n Name) String() string { return string(n) }

// Phone is a phone number of exactly 10 decimal digits. The zero value is
// invalid; use NewPhone.
type Phone string

// NewPhone validates and returns a Phone.
// Returns ErrInvalidPhone unless value is exactly 10 ASCII digits.
func NewPhone(value string) (Phone, error) {
	if !validPhone(value) {
		return "", fmt.Errorf("invalid phone number %q: %w", value, ErrInvalidPhone)
	}
	return Phone(value), nil
}

func validPhone(value string) bool {
	if len(value) != 10 {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (p Phone) String() string { return string(p) }

// Birthday is a calendar date parsed from DD.MM.YYYY. It serializes to JSON
// as the same string form.
type Birthday struct {
	date time.Time
}

// NewBirthday parses value as DD.MM.YYYY.
// Returns ErrInvalidDate on malformed input or impossible calendar dates
// (time.Parse rejects day 31 in April, Feb 30, and so on).
func NewBirthday(value string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, fmt.Errorf("invalid date %q: %w", value, ErrInvalidDate)
	}
	return Birthday{date: t}, nil
}

// Date returns the underlying calendar date (UTC, midnight).
func (b Birthday) Date() time.Time { return b.date }

// String renders the birthday in DD.MM.YYYY form.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

// MarshalJSON encodes the birthday as a DD.MM.YYYY string.
func (b Birthday) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes a DD.MM.YYYY string, applying the same validation
// as NewBirthday.
func (b *Birthday) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewBirthday(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
