// Delete command removes a contact from the book.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		return withBook(func(book *types.Book) (bool, error) {
			if _, ok := book.Find(name); !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Contact not found.")
				return false, nil
			}
			book.Delete(name)
			fmt.Fprintln(cmd.OutOrStdout(), "Contact deleted.")
			return true, nil
		})
	},
}
