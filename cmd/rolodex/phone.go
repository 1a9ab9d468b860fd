// Phone command lists the phones stored for one contact.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var phoneCmd = &cobra.Command{
	Use:   "phone <name>",
	Short: "List phones for a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBook(func(book *types.Book) (bool, error) {
			record, ok := book.Find(args[0])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Contact not found.")
				return false, nil
			}
			if flagJSON {
				return false, printRecord(cmd, record)
			}
			phones := make([]string, len(record.Phones))
			for i, p := range record.Phones {
				phones[i] = p.String()
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(phones, "; "))
			return false, nil
		})
	},
}
