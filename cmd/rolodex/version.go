// Version command for the rolodex CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/rolodex"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rolodex version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "rolodex v"+rolodex.Version)
	},
}
