package repository

// Package repository contains data access abstractions. The concrete
// SQL implementation lives in the postgres subpackage; every content
// type shares the one generic store there.

import (
	"context"
	"errors"
)

// ErrDuplicate is returned when an insert or update violates a unique
// constraint (name, slug, email).
var ErrDuplicate = errors.New("duplicate value")

// ListQuery holds optional pagination and free-text search parameters.
// Page and Limit apply only when both are positive; mixed presence
// means no pagination. SearchText, when non-empty, is matched
// case-insensitively as a substring against every field in
// SearchFields, OR-ed together. Unknown field names are ignored.
type ListQuery struct {
	Page         int
	Limit        int
	SearchText   string
	SearchFields []string
}

// Paginated reports whether the query slices results into a page.
func (q ListQuery) Paginated() bool {
	return q.Page > 0 && q.Limit > 0
}

// Offset is the number of rows preceding the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Page is one slice of a collection plus pagination metadata. When the
// query was not paginated, Items holds the full sorted collection and
// the metadata fields besides Total are zero.
type Page[T any] struct {
	Items      []T
	Total      int
	TotalPages int
	Page       int
	Limit      int
	Paginated  bool
}

// ResourceStore is the persistence contract shared by all content
// types. Rows are ordered by creation time descending with identifier
// descending as the stable tiebreak.
type ResourceStore[T, P any] interface {
	// Insert stores a new record and returns the stored row.
	Insert(ctx context.Context, rec *T) (*T, error)

	// FindByID returns one record; sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id string) (*T, error)

	// FindBySlug returns one record by its slug column; only valid for
	// slug-bearing types.
	FindBySlug(ctx context.Context, slug string) (*T, error)

	// FindFirst returns the oldest record, for singleton types.
	FindFirst(ctx context.Context) (*T, error)

	// FindByIDs returns every record whose id is in ids; missing ids
	// are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) ([]T, error)

	// List applies the search filter, counts matches, orders, and
	// optionally slices one page.
	List(ctx context.Context, q ListQuery) (*Page[T], error)

	// Update applies the non-nil fields of patch and returns the
	// updated row; sql.ErrNoRows when absent.
	Update(ctx context.Context, id string, patch *P) (*T, error)

	// Delete removes one record, returning the number of rows removed.
	Delete(ctx context.Context, id string) (int64, error)

	// DeleteMany removes every listed record in a single statement and
	// returns the number of rows removed.
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}
