// Package shell implements the interactive read-eval loop of the rolodex
// contact manager: line parsing, command dispatch, and handler-boundary
// error rendering.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dukaforge/rolodex/pkg/types"
)

// Operator-facing loop messages.
const (
	msgWelcome        = "Welcome to the assistant bot!"
	msgPrompt         = "Enter a command: "
	msgFarewell       = "Good bye!"
	msgInvalidCommand = "Invalid command."
)

// Handler is the function bound to a command token. It returns the text to
// print or an error whose message is printed in its place; either way the
// loop continues.
type Handler func(args []string) (string, error)

// Shell runs the interactive loop over a book backed by a store. The book
// is mutated in memory; the store is written once, on exit.
type Shell struct {
	book     *types.Book
	store    types.Store
	in       io.Reader
	out      io.Writer
	now      func() time.Time
	handlers map[string]Handler
}

// Option configures a Shell.
type Option func(*Shell)

// WithClock overrides the clock used for the upcoming-birthday window.
// Tests inject a fixed clock to make the window reproducible.
func WithClock(now func() time.Time) Option {
	return func(s *Shell) { s.now = now }
}

// New creates a Shell reading commands from in and printing to out.
func New(book *types.Book, store types.Store, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		book:  book,
		store: store,
		in:    in,
		out:   out,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handlers = map[string]Handler{
		"hello":         s.hello,
		"add":           s.addContact,
		"change":        s.changeContact,
		"phone":         s.showPhone,
		"all":           s.showAll,
		"delete":        s.deleteContact,
		"add-birthday":  s.addBirthday,
		"show-birthday": s.showBirthday,
		"birthdays":     s.upcomingBirthdays,
	}
	return s
}

// Run executes the read-eval loop until close/exit or end of input, then
// persists the book. Handler errors are printed and never terminate the
// loop; a failed save on exit does.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, msgWelcome)

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, msgPrompt)
		if !scanner.Scan() {
			// End of input is treated like exit: save, then farewell.
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			break
		}

		command, args := parseInput(scanner.Text())
		if command == "" {
			continue
		}
		if command == "close" || command == "exit" {
			break
		}

		handler, ok := s.handlers[command]
		if !ok {
			fmt.Fprintln(s.out, msgInvalidCommand)
			continue
		}

		// Handler boundary: validation and missing-argument failures are
		// rendered as plain output.
		result, err := handler(args)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		fmt.Fprintln(s.out, result)
	}

	if err := s.store.Save(s.book); err != nil {
		return fmt.Errorf("save address book: %w", err)
	}
	fmt.Fprintln(s.out, msgFarewell)
	return nil
}

// parseInput splits a line into a lower-cased command token and its
// argument tokens. An empty or all-whitespace line yields an empty command.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
