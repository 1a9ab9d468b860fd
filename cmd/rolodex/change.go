// Change command replaces a phone on an existing contact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var changeCmd = &cobra.Command{
	Use:   "change <name> <old-phone> <new-phone>",
	Short: "Replace a phone on a contact",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, oldPhone, newPhone := args[0], args[1], args[2]

		return withBook(func(book *types.Book) (bool, error) {
			record, ok := book.Find(name)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Contact not found.")
				return false, nil
			}
			if err := record.EditPhone(oldPhone, newPhone); err != nil {
				return false, err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Phone updated.")
			return true, nil
		})
	},
}
