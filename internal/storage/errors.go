package storage

import "errors"

var (
	// ErrNotFound is returned when a row does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned by insert-only writes when the key already exists
	ErrDuplicate = errors.New("duplicate key")
	// ErrFileNameConflict is returned when a file name is already stored under another content hash
	ErrFileNameConflict = errors.New("file name stored with different content")
)
