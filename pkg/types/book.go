package types

import "time"

// upcomingWindowDays is the size of the upcoming-birthday window.
const upcomingWindowDays = 7

// Book is the keyed collection of contact records for a session. Keys are
// the records' name strings; each value's internal name matches its key.
// Iteration order is insertion order; overwriting an existing key keeps
// its position.
//
// Book is not safe for concurrent use. The shell and the CLI commands
// access it from a single goroutine.
type Book struct {
	records map[string]*Record
	order   []string
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// AddRecord inserts or overwrites the record under its name string.
func (b *Book) AddRecord(r *Record) {
	key := r.Name.String()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find returns the record for name, and whether it exists.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the entry for name if present. No-op otherwise.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of records in the book.
func (b *Book) Len() int { return len(b.records) }

// Records returns all records in insertion order.
func (b *Book) Records() []*Record {
	result := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		result = append(result, b.records[key])
	}
	return result
}

// UpcomingBirthdays returns the names of records whose birthday occurs
// within [today, today+7] inclusive, comparing dates only. The occurrence
// is computed against today's year; a Feb 29 birthday in a non-leap year
// counts as Mar 1. Names are returned in insertion order. Callers inject
// today so the window is reproducible in tests.
func (b *Book) UpcomingBirthdays(today time.Time) []string {
	start := truncateToDay(today)
	end := start.AddDate(0, 0, upcomingWindowDays)

	var upcoming []string
	for _, r := range b.Records() {
		if r.Birthday == nil {
			continue
		}
		bd := r.Birthday.Date()
		// time.Date normalizes Feb 29 to Mar 1 in non-leap years.
		occurrence := time.Date(start.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
		if !occurrence.Before(start) && !occurrence.After(end) {
			upcoming = append(upcoming, r.Name.String())
		}
	}
	return upcoming
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
