package types

import "errors"

// Field validation errors. Constructors return these wrapped with context
// about the rejected value.
var (
	ErrInvalidName  = errors.New("name cannot be empty or just whitespace")
	ErrInvalidPhone = errors.New("phone must contain exactly 10 digits")
	ErrInvalidDate  = errors.New("invalid date format, use DD.MM.YYYY")
)

// ErrMissingArgument reports a command invoked with too few arguments.
var ErrMissingArgument = errors.New("missing argument")

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
