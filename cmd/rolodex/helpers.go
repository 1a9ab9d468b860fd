// Shared helpers for rolodex CLI subcommands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/jsonl"
	"github.com/dukaforge/rolodex/internal/sqlite"
	"github.com/dukaforge/rolodex/pkg/types"
)

// attachStore resolves the data directory, creates the configured backend,
// and attaches it. The caller must defer store.Detach().
func attachStore() (types.Store, types.Config, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if backend == "" {
		backend = defaultBackend
	}
	cfg := types.Config{
		Backend:      backend,
		DataDir:      dataDir,
		SnapshotFile: configSnapshot,
	}

	store := newStore(backend)
	if store == nil {
		return nil, cfg, fmt.Errorf("unknown backend %q (valid: %s, %s)",
			backend, types.BackendJSONL, types.BackendSQLite)
	}
	if err := store.Attach(cfg); err != nil {
		return nil, cfg, fmt.Errorf("attach store: %w", err)
	}
	return store, cfg, nil
}

// newStore returns the store implementation for the backend name, or nil
// when the name is not recognized.
func newStore(backend string) types.Store {
	switch backend {
	case types.BackendJSONL:
		return jsonl.NewStore()
	case types.BackendSQLite:
		return sqlite.NewStore()
	default:
		return nil
	}
}

// withBook attaches the store, loads the book, runs fn, and saves the book
// back when fn reports a mutation. Subcommands share this open-act-close
// cycle.
func withBook(fn func(book *types.Book) (mutated bool, err error)) error {
	store, _, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	book, err := store.Load()
	if err != nil {
		return fmt.Errorf("load address book: %w", err)
	}

	mutated, err := fn(book)
	if err != nil {
		return err
	}
	if mutated {
		if err := store.Save(book); err != nil {
			return fmt.Errorf("save address book: %w", err)
		}
	}
	return nil
}

// printRecord renders a record as its display string, or as indented JSON
// when --json is set.
func printRecord(cmd *cobra.Command, record *types.Record) error {
	if !flagJSON {
		fmt.Fprintln(cmd.OutOrStdout(), record.String())
		return nil
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
