// Command handlers for the interactive shell. Each handler returns the
// text printed to the operator; "not found" outcomes are results, not
// errors.
package shell

import (
	"fmt"
	"strings"

	"github.com/dukaforge/rolodex/pkg/types"
)

// Operator-facing handler messages.
const (
	msgGreeting            = "How can I help you?"
	msgContactAdded        = "Contact added."
	msgContactUpdated      = "Contact updated."
	msgContactDeleted      = "Contact deleted."
	msgContactNotFound     = "Contact not found."
	msgPhoneUpdated        = "Phone updated."
	msgBirthdayAdded       = "Birthday added."
	msgBirthdayNotFound    = "Birthday not found."
	msgNoContacts          = "No contacts."
	msgNoUpcomingBirthdays = "No upcoming birthdays."
)

func (s *Shell) hello(args []string) (string, error) {
	return msgGreeting, nil
}

// addContact creates the record when absent, then adds the phone. The
// phone is validated before an absent record is created, so a bad number
// never leaves an empty contact behind.
func (s *Shell) addContact(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: please provide both name and phone number", types.ErrMissingArgument)
	}
	name, phone := args[0], args[1]

	if _, err := types.NewPhone(phone); err != nil {
		return "", err
	}

	record, ok := s.book.Find(name)
	message := msgContactUpdated
	if !ok {
		var err error
		record, err = types.NewRecord(name)
		if err != nil {
			return "", err
		}
		s.book.AddRecord(record)
		message = msgContactAdded
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	return message, nil
}

// changeContact replaces old with new on an existing record. It reports
// "Phone updated." whenever the contact exists, even when the old phone
// was absent and nothing changed.
func (s *Shell) changeContact(args []string) (string, error) {
	if len(args) < 3 {
		return "", fmt.Errorf("%w: please provide name, old phone, and new phone", types.ErrMissingArgument)
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, ok := s.book.Find(name)
	if !ok {
		return msgContactNotFound, nil
	}
	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return msgPhoneUpdated, nil
}

func (s *Shell) showPhone(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("%w: please provide a contact name", types.ErrMissingArgument)
	}
	record, ok := s.book.Find(args[0])
	if !ok {
		return msgContactNotFound, nil
	}
	phones := make([]string, len(record.Phones))
	for i, p := range record.Phones {
		phones[i] = p.String()
	}
	return strings.Join(phones, "; "), nil
}

func (s *Shell) showAll(args []string) (string, error) {
	if s.book.Len() == 0 {
		return msgNoContacts, nil
	}
	lines := make([]string, 0, s.book.Len())
	for _, record := range s.book.Records() {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Shell) deleteContact(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("%w: please provide a contact name", types.ErrMissingArgument)
	}
	name := args[0]
	if _, ok := s.book.Find(name); !ok {
		return msgContactNotFound, nil
	}
	s.book.Delete(name)
	return msgContactDeleted, nil
}

func (s *Shell) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: please provide name and birthday (DD.MM.YYYY)", types.ErrMissingArgument)
	}
	name, birthday := args[0], args[1]

	record, ok := s.book.Find(name)
	if !ok {
		return msgContactNotFound, nil
	}
	if err := record.SetBirthday(birthday); err != nil {
		return "", err
	}
	return msgBirthdayAdded, nil
}

func (s *Shell) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("%w: please provide a contact name", types.ErrMissingArgument)
	}
	record, ok := s.book.Find(args[0])
	if !ok || record.Birthday == nil {
		return msgBirthdayNotFound, nil
	}
	return record.Birthday.String(), nil
}

func (s *Shell) upcomingBirthdays(args []string) (string, error) {
	upcoming := s.book.UpcomingBirthdays(s.now())
	if len(upcoming) == 0 {
		return msgNoUpcomingBirthdays, nil
	}
	return "Upcoming birthdays: " + strings.Join(upcoming, ", "), nil
}
