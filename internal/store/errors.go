package store

import (
	"errors"
	"fmt"
)

// ErrEmptyNote is returned by Commit when a note's trimmed plain text is
// empty. Empty notes are never persisted; callers route them to Delete.
var ErrEmptyNote = errors.New("note has no content")

// ErrDocumentMismatch is returned by Commit when a note's styled document
// does not project to its plain text.
var ErrDocumentMismatch = errors.New("styled document does not match plain text")

// StorageError wraps an I/O failure from the persistence layer. Storage
// errors surface to the caller untouched and are never retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
