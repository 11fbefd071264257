package filestore

import (
	"errors"
	"fmt"
)

// StorageError reports a failed store operation with its location. It wraps
// the underlying cause for errors.Is/As inspection.
type StorageError struct {
	// Op identifies the operation: "open", "load", "save", or "ping".
	Op string

	// Path is the collection file involved.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("filestore: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err is (or wraps) a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
