package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/repository"
)

// ListResult is the service-level DTO for list queries. Meta is nil
// when the query was not paginated.
type ListResult[T any] struct {
	Items []T       `json:"data"`
	Meta  *PageMeta `json:"meta,omitempty"`
}

// PageMeta echoes the requested page alongside the match counts.
type PageMeta struct {
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
}

// BulkDeleteResult reports a deleteMany outcome: how many records were
// removed and what happened to their attachment files.
type BulkDeleteResult struct {
	DeletedCount int64                     `json:"deletedCount"`
	Files        attachment.DeletionReport `json:"files"`
}

// Resource implements the uniform CRUD contract for one content type.
// It composes the store, the attachment lifecycle and the URL
// formatter around the type's Descriptor; all per-type variation lives
// in the descriptor and the store mapping.
type Resource[T, P any] struct {
	store  repository.ResourceStore[T, P]
	purger *attachment.Purger
	urls   *fileurl.Formatter
	desc   Descriptor[T, P]
}

// NewResource constructs a resource service. The base URL formatter
// and purger are shared across all types.
func NewResource[T, P any](
	store repository.ResourceStore[T, P],
	purger *attachment.Purger,
	urls *fileurl.Formatter,
	desc Descriptor[T, P],
) *Resource[T, P] {
	return &Resource[T, P]{store: store, purger: purger, urls: urls, desc: desc}
}

// NewRecord returns a record pre-filled with the type's defaults, for
// request decoding to overlay.
func (s *Resource[T, P]) NewRecord() *T {
	return s.desc.New()
}

// Kind returns the lowercase singular type name.
func (s *Resource[T, P]) Kind() string {
	return s.desc.Kind
}

// HasSlug reports whether the type supports slug lookups.
func (s *Resource[T, P]) HasSlug() bool {
	return s.desc.HasSlug
}

// Create persists a new record. Slug-bearing types get their slug
// derived from the name here, exactly once. Attachment paths arrive
// already stored and are persisted as-is; there is no previous value
// to reconcile. A duplicate name or slug fails with ErrConflict.
func (s *Resource[T, P]) Create(ctx context.Context, rec *T) (*T, error) {
	if s.desc.HasSlug {
		name := s.desc.Name(rec)
		if name == "" {
			return nil, ErrNameRequired
		}
		s.desc.SetSlug(rec, Slugify(name))
	}
	s.desc.Init(rec, uuid.NewString(), time.Now().UTC())

	created, err := s.store.Insert(ctx, rec)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrConflict, s.desc.Kind)
		}
		return nil, fmt.Errorf("create %s: %w", s.desc.Kind, err)
	}
	return created, nil
}

// List returns matching records newest-first, optionally one page,
// with every attachment path rewritten to an absolute URL.
func (s *Resource[T, P]) List(ctx context.Context, q repository.ListQuery) (*ListResult[T], error) {
	if q.SearchText != "" && len(q.SearchFields) == 0 {
		q.SearchFields = s.desc.DefaultSearchFields
	}

	page, err := s.store.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.desc.Kind, err)
	}

	for i := range page.Items {
		s.format(&page.Items[i])
	}

	res := &ListResult[T]{Items: page.Items}
	if page.Paginated {
		res.Meta = &PageMeta{
			Total:      page.Total,
			TotalPages: page.TotalPages,
			Page:       page.Page,
			Limit:      page.Limit,
		}
	}
	return res, nil
}

// Get returns one record by id, formatted for reading.
func (s *Resource[T, P]) Get(ctx context.Context, id string) (*T, error) {
	if err := s.validateID(id); err != nil {
		return nil, err
	}
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.readErr(err)
	}
	s.format(rec)
	return rec, nil
}

// GetBySlug returns one record by slug, formatted for reading.
func (s *Resource[T, P]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	rec, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, s.readErr(err)
	}
	s.format(rec)
	return rec, nil
}

// GetFirst returns the oldest record, formatted, or nil when the
// collection is empty. Used by singleton types such as settings.
func (s *Resource[T, P]) GetFirst(ctx context.Context) (*T, error) {
	rec, err := s.store.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", s.desc.Kind, err)
	}
	s.format(rec)
	return rec, nil
}

// Update merges a partial patch over the existing record. For every
// attachment field present in the patch the previous files that the
// patch drops are purged best-effort before the row is written; fields
// omitted from the patch never cause a purge. Slugs are not
// regenerated on rename.
func (s *Resource[T, P]) Update(ctx context.Context, id string, patch *P) (*T, attachment.DeletionReport, error) {
	var report attachment.DeletionReport

	if err := s.validateID(id); err != nil {
		return nil, report, err
	}
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, report, s.readErr(err)
	}

	var orphaned []string
	for _, f := range s.desc.Attachments {
		next, present := f.FromPatch(patch)
		if !present {
			continue
		}
		prev := f.Get(existing)
		var rec attachment.Reconciliation
		if f.List {
			rec = attachment.ReconcileList(prev, next)
		} else {
			single := singleValue(next)
			rec = attachment.ReconcileSingle(firstOrEmpty(prev), &single)
		}
		orphaned = append(orphaned, rec.ToDelete...)
	}
	if len(orphaned) > 0 {
		report = s.purger.Purge(ctx, orphaned)
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, report, fmt.Errorf("%w: %s", ErrConflict, s.desc.Kind)
		}
		return nil, report, s.readErr(err)
	}
	s.format(updated)
	return updated, report, nil
}

// Delete removes one record after purging all of its attachment files
// best-effort. A file already missing from storage is recorded as a
// skip in the report and never blocks the record deletion.
func (s *Resource[T, P]) Delete(ctx context.Context, id string) (attachment.DeletionReport, error) {
	var report attachment.DeletionReport

	if err := s.validateID(id); err != nil {
		return report, err
	}
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return report, s.readErr(err)
	}

	report = s.purger.Purge(ctx, s.allPaths(rec))

	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return report, fmt.Errorf("delete %s: %w", s.desc.Kind, err)
	}
	if n == 0 {
		return report, fmt.Errorf("%w: %s %s", ErrNotFound, s.desc.Kind, id)
	}
	return report, nil
}

// DeleteMany removes every listed record in one statement. Malformed
// ids are rejected up front; ids without a matching record are simply
// not counted. File purges accumulate warnings per item and never
// abort the batch.
func (s *Resource[T, P]) DeleteMany(ctx context.Context, ids []string) (*BulkDeleteResult, error) {
	for _, id := range ids {
		if err := s.validateID(id); err != nil {
			return nil, err
		}
	}

	recs, err := s.store.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load %s batch: %w", s.desc.Kind, err)
	}

	res := &BulkDeleteResult{}
	for i := range recs {
		res.Files.Merge(s.purger.Purge(ctx, s.allPaths(&recs[i])))
	}

	res.DeletedCount, err = s.store.DeleteMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("delete %s batch: %w", s.desc.Kind, err)
	}
	return res, nil
}

// format rewrites every attachment field to an absolute URL. Only read
// results are formatted; stored values stay relative.
func (s *Resource[T, P]) format(rec *T) {
	for _, f := range s.desc.Attachments {
		f.Set(rec, s.urls.FormatAll(f.Get(rec)))
	}
}

func (s *Resource[T, P]) allPaths(rec *T) []string {
	var paths []string
	for _, f := range s.desc.Attachments {
		paths = append(paths, f.Get(rec)...)
	}
	return paths
}

func (s *Resource[T, P]) validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func (s *Resource[T, P]) readErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, s.desc.Kind)
	}
	return fmt.Errorf("%s: %w", s.desc.Kind, err)
}

func firstOrEmpty(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func singleValue(next []string) string {
	if len(next) == 0 {
		return ""
	}
	return next[0]
}
