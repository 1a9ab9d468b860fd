// Root command for the rolodex CLI. Running rolodex without a subcommand
// starts the interactive shell.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/paths"
	"github.com/dukaforge/rolodex/internal/shell"
	"github.com/dukaforge/rolodex/pkg/rolodex"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Config values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configBackend  string
	configDataDir  string
	configSnapshot string
)

var rootCmd = &cobra.Command{
	Use:   "rolodex",
	Short: "Rolodex is a command-line contact manager",
	Long: `Rolodex stores contact records (name, phone numbers, birthday),
offers a small command grammar to create, edit, and query them, and
persists the collection to disk between sessions.

Run without a subcommand to enter the interactive shell.`,
	Version:       rolodex.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version needs no configuration and must not create directories.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		// init writes config.yaml itself, recording the resolved
		// data_dir; writing the stock default here would preempt it.
		cfg, err := loadConfig(configDir, cmd.Name() != "init")
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configSnapshot = cfg.GetString(cfgKeySnapshotFile)
		return nil
	},
	RunE: runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.rolodex-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(changeCmd)
	rootCmd.AddCommand(phoneCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(addBirthdayCmd)
	rootCmd.AddCommand(showBirthdayCmd)
	rootCmd.AddCommand(birthdaysCmd)
}

// runShell loads the book and hands control to the interactive loop. The
// shell saves the book on exit; Detach happens after the loop returns.
func runShell(cmd *cobra.Command, args []string) error {
	store, _, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	book, err := store.Load()
	if err != nil {
		return err
	}

	return shell.New(book, store, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > ROLODEX_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > ROLODEX_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
