// Init command creates configuration and data directories and an empty
// snapshot.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dukaforge/rolodex/pkg/types"
)

// initConfigFile holds the structure written to config.yaml.
type initConfigFile struct {
	Backend      string `yaml:"backend"`
	DataDir      string `yaml:"data_dir,omitempty"`
	SnapshotFile string `yaml:"snapshot_file,omitempty"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize rolodex storage",
	Long:  "Create configuration and data directories, then initialize the snapshot backend.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, dataDir); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	// Initialize the data directory and write an empty snapshot via
	// Attach, Save, Detach.
	store, cfg, err := attachStore()
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Detach()

	book, err := store.Load()
	if err != nil {
		return fmt.Errorf("initialize snapshot: %w", err)
	}
	if err := store.Save(book); err != nil {
		return fmt.Errorf("initialize snapshot: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rolodex initialized (%s backend)\n", cfg.Backend)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the
// file does not exist. If it already exists, the function returns nil
// (idempotent).
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := initConfigFile{
		Backend: types.BackendJSONL,
		DataDir: dataDir,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
