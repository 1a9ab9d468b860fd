// List command prints every contact in the book.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	Long: `List prints every contact with its phones and birthday, in the order
contacts were added.

Example:
  rolodex list
  rolodex list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBook(func(book *types.Book) (bool, error) {
			records := book.Records()

			if flagJSON {
				data, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return false, fmt.Errorf("marshal records: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return false, nil
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No contacts.")
				return false, nil
			}
			for _, record := range records {
				fmt.Fprintln(cmd.OutOrStdout(), record.String())
			}
			return false, nil
		})
	},
}
