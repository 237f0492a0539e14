package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"viscart/internal/repository"
)

// RowScanner abstracts *sql.Row and *sql.Rows for the mapping scan funcs.
type RowScanner interface {
	Scan(dest ...any) error
}

// Mapping describes how one content type binds to its table. It is the
// only per-type code the store needs; the SQL itself is generic.
type Mapping[T, P any] struct {
	// Table is the SQL table name.
	Table string
	// Columns lists every column in select/insert order. The first
	// must be id; created_at and updated_at must be present.
	Columns []string
	// Scan reads one row in Columns order.
	Scan func(rs RowScanner) (*T, error)
	// InsertArgs yields values in Columns order for an insert.
	InsertArgs func(rec *T) []any
	// PatchAssign yields the SET columns and values for the non-nil
	// fields of a patch. Never includes updated_at; the store adds it.
	PatchAssign func(patch *P) ([]string, []any)
	// Searchable maps external search field names to columns. Fields
	// absent from the map are silently ignored.
	Searchable map[string]string
	// SlugColumn names the slug column, or "" for types without one.
	SlugColumn string
}

// Resource is a PostgreSQL implementation of repository.ResourceStore
// driven by a Mapping. It uses database/sql with parameterized queries
// and contains no business logic.
type Resource[T, P any] struct {
	db *sql.DB
	m  Mapping[T, P]
}

// NewResource creates a store for one content type.
func NewResource[T, P any](db *sql.DB, m Mapping[T, P]) *Resource[T, P] {
	return &Resource[T, P]{db: db, m: m}
}

func (r *Resource[T, P]) cols() string {
	return strings.Join(r.m.Columns, ", ")
}

// Insert stores a new row and returns the stored record.
func (r *Resource[T, P]) Insert(ctx context.Context, rec *T) (*T, error) {
	ph := make([]string, len(r.m.Columns))
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.m.Table, r.cols(), strings.Join(ph, ", "), r.cols(),
	)
	out, err := r.m.Scan(r.db.QueryRowContext(ctx, q, r.m.InsertArgs(rec)...))
	if err != nil {
		return nil, wrapUnique(err)
	}
	return out, nil
}

// FindByID fetches a single row by id.
func (r *Resource[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.cols(), r.m.Table)
	return r.m.Scan(r.db.QueryRowContext(ctx, q, id))
}

// FindBySlug fetches a single row by its slug column.
func (r *Resource[T, P]) FindBySlug(ctx context.Context, slug string) (*T, error) {
	if r.m.SlugColumn == "" {
		return nil, fmt.Errorf("%s has no slug column", r.m.Table)
	}
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", r.cols(), r.m.Table, r.m.SlugColumn)
	return r.m.Scan(r.db.QueryRowContext(ctx, q, slug))
}

// FindFirst fetches the oldest row, used by singleton types.
func (r *Resource[T, P]) FindFirst(ctx context.Context) (*T, error) {
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at ASC, id ASC LIMIT 1", r.cols(), r.m.Table)
	return r.m.Scan(r.db.QueryRowContext(ctx, q))
}

// FindByIDs fetches every row whose id is in ids.
func (r *Resource[T, P]) FindByIDs(ctx context.Context, ids []string) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	ph := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		ph[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	q := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id IN (%s) ORDER BY created_at DESC, id DESC",
		r.cols(), r.m.Table, strings.Join(ph, ", "),
	)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

// List applies the search filter, counts matching rows, and returns
// either the full ordered collection or one page slice.
func (r *Resource[T, P]) List(ctx context.Context, q repository.ListQuery) (*repository.Page[T], error) {
	where, args := r.searchClause(q)

	qList := fmt.Sprintf(
		"SELECT %s FROM %s%s ORDER BY created_at DESC, id DESC",
		r.cols(), r.m.Table, where,
	)

	res := &repository.Page[T]{}
	if q.Paginated() {
		qCount := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.m.Table, where)
		if err := r.db.QueryRowContext(ctx, qCount, args...).Scan(&res.Total); err != nil {
			return nil, err
		}

		qList += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, q.Limit, q.Offset())

		res.Paginated = true
		res.Page = q.Page
		res.Limit = q.Limit
		res.TotalPages = (res.Total + q.Limit - 1) / q.Limit
	}

	rows, err := r.db.QueryContext(ctx, qList, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := r.collect(rows)
	if err != nil {
		return nil, err
	}
	res.Items = items
	if !res.Paginated {
		res.Total = len(items)
	}
	return res, nil
}

// Update applies a partial patch and returns the updated row. An empty
// patch degrades to a plain read.
func (r *Resource[T, P]) Update(ctx context.Context, id string, patch *P) (*T, error) {
	cols, args := r.m.PatchAssign(patch)
	if len(cols) == 0 {
		return r.FindByID(ctx, id)
	}

	set := make([]string, 0, len(cols)+1)
	for i, c := range cols {
		set = append(set, fmt.Sprintf("%s = $%d", c, i+1))
	}
	set = append(set, "updated_at = now()")

	q := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		r.m.Table, strings.Join(set, ", "), len(args)+1, r.cols(),
	)
	args = append(args, id)

	out, err := r.m.Scan(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, wrapUnique(err)
	}
	return out, nil
}

// Delete removes one row by id and reports how many rows went away.
func (r *Resource[T, P]) Delete(ctx context.Context, id string) (int64, error) {
	q := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.m.Table)
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteMany removes every listed row in one statement. Ids without a
// matching row simply do not count toward the result.
func (r *Resource[T, P]) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	ph := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		ph[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	q := fmt.Sprintf("DELETE FROM %s WHERE id IN (%s)", r.m.Table, strings.Join(ph, ", "))
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *Resource[T, P]) collect(rows *sql.Rows) ([]T, error) {
	items := make([]T, 0)
	for rows.Next() {
		rec, err := r.m.Scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// searchClause builds a WHERE fragment OR-ing a case-insensitive
// substring match over the requested fields. Fields unknown to the
// mapping are skipped, never an error.
func (r *Resource[T, P]) searchClause(q repository.ListQuery) (string, []any) {
	if q.SearchText == "" {
		return "", nil
	}
	var terms []string
	for _, f := range q.SearchFields {
		col, ok := r.m.Searchable[f]
		if !ok {
			continue
		}
		terms = append(terms, fmt.Sprintf("%s ILIKE $1", col))
	}
	if len(terms) == 0 {
		return "", nil
	}
	return " WHERE (" + strings.Join(terms, " OR ") + ")", []any{"%" + escapeLike(q.SearchText) + "%"}
}

// escapeLike neutralizes LIKE metacharacters in user-supplied text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}

// wrapUnique converts a Postgres unique-constraint violation into
// repository.ErrDuplicate so upper layers need not know pg error codes.
func wrapUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
