// Package sentinel defines store-level sentinel errors shared by all
// storage implementations. Services translate these into domain errors.
package sentinel

import "errors"

var (
	// ErrNotFound signals a lookup miss in any store.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists signals a uniqueness violation on insert.
	ErrAlreadyExists = errors.New("already exists")
)
