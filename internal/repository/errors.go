package repository

import "errors"

// Sentinel errors shared by all repositories. Services and handlers
// match on these with errors.Is.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)
