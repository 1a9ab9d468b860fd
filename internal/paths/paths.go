// Package paths resolves configuration and data directory locations for
// the rolodex CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative data directory name used when no override is active.
const DefaultDataDirName = ".rolodex-db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "ROLODEX_CONFIG_DIR"
	EnvDataDir   = "ROLODEX_DATA_DIR"
)

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/rolodex (fallback ~/.config/rolodex)
// macOS:   ~/Library/Application Support/rolodex
// Windows: %APPDATA%/rolodex
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "rolodex"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "rolodex"), nil
	}
	// macOS and Windows: os.UserConfigDir returns ~/Library/Application
	// Support and %APPDATA% respectively.
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rolodex"), nil
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/rolodex (fallback ~/.local/share/rolodex)
// macOS:   ~/Library/Application Support/rolodex
// Windows: %APPDATA%/rolodex
func DefaultDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "rolodex"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "rolodex"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rolodex"), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > ROLODEX_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > config.yaml value > ROLODEX_DATA_DIR env > $(CWD)/.rolodex-db.
//
// The CWD-relative default keeps the snapshot next to where the operator
// runs the tool when nothing else is configured.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
