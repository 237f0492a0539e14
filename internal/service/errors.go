package service

import "errors"

var (
	// ErrNotFound means the identifier or slug resolves to no live record.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict means a unique constraint (name, slug, email) was violated.
	ErrConflict = errors.New("resource already exists")
	// ErrInvalidID means the supplied identifier is malformed. It is
	// rejected before any query runs.
	ErrInvalidID = errors.New("invalid id format")
	// ErrNameRequired means a slug-bearing type was created without a name.
	ErrNameRequired = errors.New("name is required")
)
