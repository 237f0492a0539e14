package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"viscart/internal/model"
	"viscart/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrandStore(t *testing.T) (*Resource[model.Brand, model.BrandPatch], sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewResource(db, BrandMapping()), mock, func() { db.Close() }
}

func brandRows(brands ...model.Brand) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "attachment", "status", "created_at", "updated_at"})
	for _, b := range brands {
		rows.AddRow(b.ID, b.Name, b.Attachment, b.Status, b.CreatedAt, b.UpdatedAt)
	}
	return rows
}

func TestResource_Insert(t *testing.T) {
	store, mock, done := newBrandStore(t)
	defer done()

	now := time.Now().UTC()
	b := &model.Brand{ID: "brand-1", Name: "Acme", Attachment: "uploads/acme.png", Status: true, CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("INSERT INTO brands").
		WithArgs(b.ID, b.Name, b.Attachment, b.Status, b.CreatedAt, b.UpdatedAt).
		WillReturnRows(brandRows(*b))

	out, err := store.Insert(context.Background(), b)

	assert.NoError(t, err)
	assert.Equal(t, "Acme", out.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResource_Insert_UniqueViolation(t *testing.T) {
	store, mock, done := newBrandStore(t)
	defer done()

	mock.ExpectQuery("INSERT INTO brands").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "brands_name_key"})

	_, err := store.Insert(context.Background(), &model.Brand{ID: "brand-1", Name: "Acme"})

	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResource_FindByID(t *testing.T) {
	store, mock, done := newBrandStore(t)
	defer done()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM brands WHERE id = ?").
			WithArgs("brand-1").
			WillReturnRows(brandRows(model.Brand{ID: "brand-1", Name: "Acme"}))

		b, err := store.FindByID(ctx, "brand-1")

		assert.NoError(t, err)
		assert.Equal(t, "brand-1", b.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM brands WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := store.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestResource_List(t *testing.T) {
	ctx := context.Background()

	t.Run("paginated with search", func(t *testing.T) {
		store, mock, done := newBrandStore(t)
		defer done()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM brands WHERE (name ILIKE $1)`)).
			WithArgs("%cafe%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`)).
			WithArgs("%cafe%", 10, 10).
			WillReturnRows(brandRows(model.Brand{ID: "brand-11", Name: "Cafe Uno"}))

		page, err := store.List(ctx, repository.ListQuery{
			Page: 2, Limit: 10,
			SearchText:   "cafe",
			SearchFields: []string{"name"},
		})

		assert.NoError(t, err)
		assert.True(t, page.Paginated)
		assert.Equal(t, 25, page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 2, page.Page)
		assert.Len(t, page.Items, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown search field is a no-op", func(t *testing.T) {
		store, mock, done := newBrandStore(t)
		defer done()

		// No WHERE clause at all: the only requested field is unknown.
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM brands`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT (.+) FROM brands ORDER BY created_at DESC, id DESC LIMIT").
			WithArgs(5, 0).
			WillReturnRows(brandRows())

		page, err := store.List(ctx, repository.ListQuery{
			Page: 1, Limit: 5,
			SearchText:   "cafe",
			SearchFields: []string{"nonexistent"},
		})

		assert.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not paginated returns everything without count query", func(t *testing.T) {
		store, mock, done := newBrandStore(t)
		defer done()

		mock.ExpectQuery("SELECT (.+) FROM brands ORDER BY created_at DESC, id DESC").
			WillReturnRows(brandRows(
				model.Brand{ID: "brand-2"},
				model.Brand{ID: "brand-1"},
			))

		page, err := store.List(ctx, repository.ListQuery{Limit: 10}) // page absent

		assert.NoError(t, err)
		assert.False(t, page.Paginated)
		assert.Equal(t, 2, page.Total)
		assert.Zero(t, page.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResource_Update(t *testing.T) {
	ctx := context.Background()
	name := "Renamed"

	t.Run("patch applies only present fields", func(t *testing.T) {
		store, mock, done := newBrandStore(t)
		defer done()

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE brands SET name = $1, updated_at = now() WHERE id = $2 RETURNING`)).
			WithArgs(name, "brand-1").
			WillReturnRows(brandRows(model.Brand{ID: "brand-1", Name: name}))

		out, err := store.Update(ctx, "brand-1", &model.BrandPatch{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, name, out.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty patch degrades to read", func(t *testing.T) {
		store, mock, done := newBrandStore(t)
		defer done()

		mock.ExpectQuery("SELECT (.+) FROM brands WHERE id = ?").
			WithArgs("brand-1").
			WillReturnRows(brandRows(model.Brand{ID: "brand-1"}))

		out, err := store.Update(ctx, "brand-1", &model.BrandPatch{})

		assert.NoError(t, err)
		assert.Equal(t, "brand-1", out.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to ErrDuplicate", func(t *testing.T) {
		store, mock, done := newBrandStore(t)
		defer done()

		mock.ExpectQuery("UPDATE brands SET").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "brands_name_key"})

		_, err := store.Update(ctx, "brand-1", &model.BrandPatch{Name: &name})

		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})
}

func TestResource_Delete(t *testing.T) {
	store, mock, done := newBrandStore(t)
	defer done()

	mock.ExpectExec("DELETE FROM brands WHERE id = ?").
		WithArgs("brand-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := store.Delete(context.Background(), "brand-1")

	assert.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResource_DeleteMany(t *testing.T) {
	ctx := context.Background()

	t.Run("single statement for all ids", func(t *testing.T) {
		store, mock, done := newBrandStore(t)
		defer done()

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM brands WHERE id IN ($1, $2)`)).
			WithArgs("brand-1", "brand-2").
			WillReturnResult(sqlmock.NewResult(0, 2))

		n, err := store.DeleteMany(ctx, []string{"brand-1", "brand-2"})

		assert.NoError(t, err)
		assert.EqualValues(t, 2, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no ids is a no-op success", func(t *testing.T) {
		store, _, done := newBrandStore(t)
		defer done()

		n, err := store.DeleteMany(ctx, nil)

		assert.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestResource_FindByIDs(t *testing.T) {
	store, mock, done := newBrandStore(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id IN ($1, $2)`)).
		WithArgs("brand-1", "brand-2").
		WillReturnRows(brandRows(model.Brand{ID: "brand-2"}, model.Brand{ID: "brand-1"}))

	items, err := store.FindByIDs(context.Background(), []string{"brand-1", "brand-2"})

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResource_ListScansJSONBList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewResource(db, WorkMapping())
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "name", "slug", "description", "main_image",
		"images", "status", "created_at", "updated_at",
	}).AddRow("work-1", "Lobby", "lobby", "", "uploads/main.jpg",
		[]byte(`["uploads/a.jpg","uploads/b.jpg"]`), true, now, now)

	mock.ExpectQuery("SELECT (.+) FROM works ORDER BY created_at DESC, id DESC").
		WillReturnRows(rows)

	page, err := store.List(context.Background(), repository.ListQuery{})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, model.StringList{"uploads/a.jpg", "uploads/b.jpg"}, page.Items[0].Images)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestWrapUnique_PassesThroughOtherErrors(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, err, wrapUnique(err))
	assert.NotErrorIs(t, wrapUnique(&pgconn.PgError{Code: "23503"}), repository.ErrDuplicate)
}
