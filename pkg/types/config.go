package types

import "errors"

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend      string `json:"backend" yaml:"backend"`
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	SnapshotFile string `json:"snapshot_file" yaml:"snapshot_file"`
}

// Supported backend names.
const (
	BackendJSONL  = "jsonl"
	BackendSQLite = "sqlite"
)

// Default snapshot file names per backend.
const (
	DefaultJSONLSnapshot  = "addressbook.jsonl"
	DefaultSQLiteSnapshot = "addressbook.db"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSONL:  true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}

// Snapshot returns the configured snapshot file name, falling back to the
// backend's default when unset.
func (c Config) Snapshot() string {
	if c.SnapshotFile != "" {
		return c.SnapshotFile
	}
	if c.Backend == BackendSQLite {
		return DefaultSQLiteSnapshot
	}
	return DefaultJSONLSnapshot
}
