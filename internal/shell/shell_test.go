package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/rolodex/pkg/types"
)

// memStore is an in-memory types.Store recording saves.
type memStore struct {
	saved   *types.Book
	saves   int
	saveErr error
}

func (m *memStore) Attach(types.Config) error { return nil }
func (m *memStore) Detach() error             { return nil }
func (m *memStore) Load() (*types.Book, error) {
	if m.saved == nil {
		return types.NewBook(), nil
	}
	return m.saved, nil
}
func (m *memStore) Save(book *types.Book) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = book
	m.saves++
	return nil
}

// runScript feeds lines to a fresh shell and returns the output.
func runScript(t *testing.T, book *types.Book, store *memStore, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	fixed := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	s := New(book, store, in, &out, WithClock(func() time.Time { return fixed }))
	require.NoError(t, s.Run())
	return out.String()
}

func TestRunBannerAndFarewell(t *testing.T) {
	store := &memStore{}
	out := runScript(t, types.NewBook(), store, "exit")

	assert.True(t, strings.HasPrefix(out, "Welcome to the assistant bot!\n"))
	assert.Contains(t, out, "Enter a command: ")
	assert.True(t, strings.HasSuffix(out, "Good bye!\n"))
	assert.Equal(t, 1, store.saves, "exit must persist the book")
}

func TestRunCloseAlsoExits(t *testing.T) {
	store := &memStore{}
	out := runScript(t, types.NewBook(), store, "close")
	assert.Contains(t, out, "Good bye!")
	assert.Equal(t, 1, store.saves)
}

func TestRunEOFSavesAndExits(t *testing.T) {
	store := &memStore{}
	in := strings.NewReader("hello\n") // no exit command; input just ends
	var out bytes.Buffer
	s := New(types.NewBook(), store, in, &out)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Good bye!")
	assert.Equal(t, 1, store.saves)
}

func TestRunSaveFailureIsFatal(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	in := strings.NewReader("exit\n")
	var out bytes.Buffer
	s := New(types.NewBook(), store, in, &out)

	err := s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NotContains(t, out.String(), "Good bye!")
}

func TestHelloCommand(t *testing.T) {
	out := runScript(t, types.NewBook(), &memStore{}, "hello", "exit")
	assert.Contains(t, out, "How can I help you?")
}

func TestInvalidCommand(t *testing.T) {
	out := runScript(t, types.NewBook(), &memStore{}, "frobnicate", "exit")
	assert.Contains(t, out, "Invalid command.")
}

func TestCommandTokenIsCaseInsensitive(t *testing.T) {
	out := runScript(t, types.NewBook(), &memStore{}, "  HELLO  ", "exit")
	assert.Contains(t, out, "How can I help you?")
	assert.NotContains(t, out, "Invalid command.")
}

func TestEmptyLineReprompts(t *testing.T) {
	out := runScript(t, types.NewBook(), &memStore{}, "", "   ", "exit")
	assert.NotContains(t, out, "Invalid command.")
	assert.Equal(t, 3, strings.Count(out, "Enter a command: "))
}

func TestAddContact(t *testing.T) {
	book := types.NewBook()
	out := runScript(t, book, &memStore{},
		"add alice 1234567890",
		"add alice 1234567891",
		"exit")

	assert.Contains(t, out, "Contact added.")
	assert.Contains(t, out, "Contact updated.")

	// Idempotent-additive: one record, two phones.
	require.Equal(t, 1, book.Len())
	record, ok := book.Find("alice")
	require.True(t, ok)
	assert.Equal(t, []types.Phone{"1234567890", "1234567891"}, record.Phones)
}

func TestAddContactErrors(t *testing.T) {
	t.Run("missing arguments", func(t *testing.T) {
		out := runScript(t, types.NewBook(), &memStore{}, "add alice", "exit")
		assert.Contains(t, out, "missing argument")
		assert.Contains(t, out, "Good bye!", "loop must continue after handler error")
	})

	t.Run("invalid phone leaves no ghost contact", func(t *testing.T) {
		book := types.NewBook()
		out := runScript(t, book, &memStore{}, "add alice 12345", "exit")
		assert.Contains(t, out, "invalid phone number")
		assert.Equal(t, 0, book.Len())
	})
}

func TestChangeContact(t *testing.T) {
	newBook := func(t *testing.T) *types.Book {
		book := types.NewBook()
		r, err := types.NewRecord("bob")
		require.NoError(t, err)
		require.NoError(t, r.AddPhone("1111111111"))
		book.AddRecord(r)
		return book
	}

	t.Run("replaces phone", func(t *testing.T) {
		book := newBook(t)
		out := runScript(t, book, &memStore{}, "change bob 1111111111 2222222222", "exit")
		assert.Contains(t, out, "Phone updated.")
		r, _ := book.Find("bob")
		assert.Equal(t, []types.Phone{"2222222222"}, r.Phones)
	})

	t.Run("unknown contact", func(t *testing.T) {
		out := runScript(t, newBook(t), &memStore{}, "change nobody 1111111111 2222222222", "exit")
		assert.Contains(t, out, "Contact not found.")
	})

	t.Run("absent old phone still reports success", func(t *testing.T) {
		book := newBook(t)
		out := runScript(t, book, &memStore{}, "change bob 9999999999 2222222222", "exit")
		assert.Contains(t, out, "Phone updated.")
		r, _ := book.Find("bob")
		assert.Equal(t, []types.Phone{"1111111111"}, r.Phones, "list unchanged")
	})

	t.Run("invalid new phone", func(t *testing.T) {
		out := runScript(t, newBook(t), &memStore{}, "change bob 1111111111 bad", "exit")
		assert.Contains(t, out, "invalid phone number")
		assert.NotContains(t, out, "Phone updated.")
	})

	t.Run("missing arguments", func(t *testing.T) {
		out := runScript(t, newBook(t), &memStore{}, "change bob 1111111111", "exit")
		assert.Contains(t, out, "missing argument")
	})
}

func TestShowPhone(t *testing.T) {
	book := types.NewBook()
	r, err := types.NewRecord("carol")
	require.NoError(t, err)
	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.AddPhone("0987654321"))
	book.AddRecord(r)

	t.Run("lists phones", func(t *testing.T) {
		out := runScript(t, book, &memStore{}, "phone carol", "exit")
		assert.Contains(t, out, "1234567890; 0987654321")
	})

	t.Run("unknown contact", func(t *testing.T) {
		out := runScript(t, book, &memStore{}, "phone nobody", "exit")
		assert.Contains(t, out, "Contact not found.")
	})
}

func TestShowAll(t *testing.T) {
	t.Run("empty book", func(t *testing.T) {
		out := runScript(t, types.NewBook(), &memStore{}, "all", "exit")
		assert.Contains(t, out, "No contacts.")
	})

	t.Run("renders each record", func(t *testing.T) {
		book := types.NewBook()
		out := runScript(t, book, &memStore{},
			"add alice 1234567890",
			"add-birthday alice 20.06.1990",
			"add bob 5555555555",
			"all",
			"exit")
		assert.Contains(t, out,
			"Contact name: alice, phones: 1234567890, birthday: 20.06.1990")
		assert.Contains(t, out,
			"Contact name: bob, phones: 5555555555, birthday: No birthday")
	})
}

func TestDeleteContact(t *testing.T) {
	book := types.NewBook()
	out := runScript(t, book, &memStore{},
		"add alice 1234567890",
		"delete alice",
		"delete alice",
		"exit")
	assert.Contains(t, out, "Contact deleted.")
	assert.Contains(t, out, "Contact not found.")
	assert.Equal(t, 0, book.Len())
}

func TestBirthdayCommands(t *testing.T) {
	t.Run("add and show", func(t *testing.T) {
		out := runScript(t, types.NewBook(), &memStore{},
			"add bob 1234567890",
			"add-birthday bob 20.06.1990",
			"show-birthday bob",
			"exit")
		assert.Contains(t, out, "Birthday added.")
		assert.Contains(t, out, "20.06.1990")
	})

	t.Run("invalid date", func(t *testing.T) {
		out := runScript(t, types.NewBook(), &memStore{},
			"add bob 1234567890",
			"add-birthday bob 31.04.1990",
			"exit")
		assert.Contains(t, out, "invalid date")
	})

	t.Run("birthday for unknown contact", func(t *testing.T) {
		out := runScript(t, types.NewBook(), &memStore{},
			"add-birthday nobody 20.06.1990", "exit")
		assert.Contains(t, out, "Contact not found.")
	})

	t.Run("show without birthday", func(t *testing.T) {
		out := runScript(t, types.NewBook(), &memStore{},
			"add bob 1234567890",
			"show-birthday bob",
			"exit")
		assert.Contains(t, out, "Birthday not found.")
	})

	t.Run("show for unknown contact", func(t *testing.T) {
		out := runScript(t, types.NewBook(), &memStore{},
			"show-birthday nobody", "exit")
		assert.Contains(t, out, "Birthday not found.")
	})
}

func TestUpcomingBirthdays(t *testing.T) {
	// The injected clock in runScript is fixed at 15.06.2026.
	t.Run("inside the window", func(t *testing.T) {
		out := runScript(t, types.NewBook(), &memStore{},
			"add bob 1234567890",
			"add-birthday bob 20.06.1990",
			"birthdays",
			"exit")
		assert.Contains(t, out, "Upcoming birthdays: bob")
	})

	t.Run("outside the window", func(t *testing.T) {
		out := runScript(t, types.NewBook(), &memStore{},
			"add bob 1234567890",
			"add-birthday bob 30.06.1990",
			"birthdays",
			"exit")
		assert.Contains(t, out, "No upcoming birthdays.")
	})
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantCmd  string
		wantArgs []string
	}{
		{name: "command only", line: "hello", wantCmd: "hello", wantArgs: []string{}},
		{name: "command with args", line: "add alice 1234567890", wantCmd: "add", wantArgs: []string{"alice", "1234567890"}},
		{name: "upper case lowered", line: "ADD alice 1", wantCmd: "add", wantArgs: []string{"alice", "1"}},
		{name: "argument case preserved", line: "phone Alice", wantCmd: "phone", wantArgs: []string{"Alice"}},
		{name: "extra whitespace", line: "  add   alice  1  ", wantCmd: "add", wantArgs: []string{"alice", "1"}},
		{name: "empty line", line: "", wantCmd: ""},
		{name: "whitespace only", line: " \t ", wantCmd: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := parseInput(tt.line)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
