// Package types defines the validated field types, the Record and Book
// entities, the Store interface, and standard error types for the rolodex
// contact manager.
package types
