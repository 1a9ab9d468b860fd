// Package integration provides CLI integration tests for rolodex.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// rolodexBin is the path to the built rolodex binary.
	rolodexBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config and
// data directory.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates a new isolated test environment using the given
// backend.
func NewTestEnv(t *testing.T, backend string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build rolodex: %v", buildErr)
	}
	if rolodexBin == "" {
		t.Fatal("rolodex binary not built (rolodexBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: " + backend + "\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		DataDir:   dataDir,
	}
}

// CmdResult holds the result of a rolodex command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes the rolodex CLI with the given arguments.
func (e *TestEnv) Run(args ...string) CmdResult {
	e.t.Helper()
	return e.RunWithInput("", args...)
}

// RunWithInput executes the rolodex CLI feeding input on stdin. An empty
// args list runs the interactive shell.
func (e *TestEnv) RunWithInput(input string, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(rolodexBin, allArgs...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run rolodex: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRun executes the rolodex CLI and fails the test if it returns
// non-zero.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()

	result := e.Run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("rolodex %v failed (exit %d)\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
