package repository

import "errors"

// Sentinel errors shared by all repositories so callers never depend
// on driver error types.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
