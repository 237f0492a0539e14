package attachment

import (
	"context"
	"errors"
	"log"

	"viscart/internal/storage"
)

// DeletionReport lists the outcome of a purge per path. Skipped paths
// were already absent from storage; Failed paths hit a real error.
// Neither aborts the surrounding operation.
type DeletionReport struct {
	Deleted []string `json:"deleted"`
	Skipped []string `json:"skipped"`
	Failed  []string `json:"failed"`
}

// Merge folds another report into r.
func (r *DeletionReport) Merge(o DeletionReport) {
	r.Deleted = append(r.Deleted, o.Deleted...)
	r.Skipped = append(r.Skipped, o.Skipped...)
	r.Failed = append(r.Failed, o.Failed...)
}

// Clean reports whether every attempted deletion succeeded.
func (r DeletionReport) Clean() bool {
	return len(r.Skipped) == 0 && len(r.Failed) == 0
}

// Purger deletes attachment objects from storage best-effort: a path
// that is already gone or fails to delete is recorded and logged, and
// never blocks the caller's database mutation.
type Purger struct {
	store storage.Storage
}

// NewPurger creates a Purger over the given storage backend.
func NewPurger(store storage.Storage) *Purger {
	return &Purger{store: store}
}

// Purge deletes the given paths, deduplicated, in order. It always
// returns a complete report; one failing path never prevents purging
// its siblings.
func (p *Purger) Purge(ctx context.Context, paths []string) DeletionReport {
	var rep DeletionReport
	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if path == "" {
			continue
		}
		key := normalize(path)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		switch err := p.store.Delete(ctx, key); {
		case err == nil:
			rep.Deleted = append(rep.Deleted, key)
		case errors.Is(err, storage.ErrObjectNotFound):
			log.Printf("warn: attachment %s already absent from storage", key)
			rep.Skipped = append(rep.Skipped, key)
		default:
			log.Printf("warn: failed to delete attachment %s: %v", key, err)
			rep.Failed = append(rep.Failed, key)
		}
	}
	return rep
}
