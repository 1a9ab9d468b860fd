// Package main provides the rolodex CLI: an interactive contact manager
// with non-interactive subcommands for scripting.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
