package types

// Store defines the interface for backend-agnostic snapshot persistence.
// Callers attach to a backend, load the book once at startup, save the
// whole book, and detach when done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Load reads the persisted snapshot and returns the rehydrated book.
	// A missing snapshot is not an error; Load returns an empty book.
	// Returns ErrStoreDetached if the store is not attached.
	Load() (*Book, error)

	// Save serializes the entire book, replacing any previous snapshot.
	// Returns ErrStoreDetached if the store is not attached.
	Save(book *Book) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, Load and Save return ErrStoreDetached.
	Detach() error
}
