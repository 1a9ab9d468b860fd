// Add command creates a contact or adds a phone to an existing one.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <phone>",
	Short: "Add a contact or append a phone",
	Long: `Add creates a contact with the given phone, or appends the phone when
the contact already exists. Phones are exactly 10 digits.

Example:
  rolodex add alice 1234567890
  rolodex add alice 0987654321`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, phone := args[0], args[1]

		// Validate up front so a bad number never creates an empty contact.
		if _, err := types.NewPhone(phone); err != nil {
			return err
		}

		return withBook(func(book *types.Book) (bool, error) {
			record, ok := book.Find(name)
			message := "Contact updated."
			if !ok {
				var err error
				record, err = types.NewRecord(name)
				if err != nil {
					return false, err
				}
				book.AddRecord(record)
				message = "Contact added."
			}
			if err := record.AddPhone(phone); err != nil {
				return false, err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return true, nil
		})
	},
}
