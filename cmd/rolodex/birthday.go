// Birthday commands: set a birthday, show one, and list the upcoming week.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var addBirthdayCmd = &cobra.Command{
	Use:   "add-birthday <name> <DD.MM.YYYY>",
	Short: "Set a contact's birthday",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, birthday := args[0], args[1]

		return withBook(func(book *types.Book) (bool, error) {
			record, ok := book.Find(name)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Contact not found.")
				return false, nil
			}
			if err := record.SetBirthday(birthday); err != nil {
				return false, err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Birthday added.")
			return true, nil
		})
	},
}

var showBirthdayCmd = &cobra.Command{
	Use:   "show-birthday <name>",
	Short: "Show a contact's birthday",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBook(func(book *types.Book) (bool, error) {
			record, ok := book.Find(args[0])
			if !ok || record.Birthday == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Birthday not found.")
				return false, nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), record.Birthday.String())
			return false, nil
		})
	},
}

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "List contacts with birthdays in the next 7 days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBook(func(book *types.Book) (bool, error) {
			upcoming := book.UpcomingBirthdays(time.Now())
			if len(upcoming) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No upcoming birthdays.")
				return false, nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Upcoming birthdays: "+strings.Join(upcoming, ", "))
			return false, nil
		})
	},
}
