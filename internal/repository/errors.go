package repository

import "errors"

// ErrNotFound is returned when a record does not exist in the store.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique constraint rejects a write,
// currently only account emails.
var ErrDuplicate = errors.New("already exists")
