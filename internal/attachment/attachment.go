package attachment

// Package attachment keeps object-storage file references consistent
// with database records. Reconcile computes which stored paths an
// update or delete leaves orphaned; Purger removes them best-effort
// and reports the outcome instead of only logging it.

import "strings"

// Reconciliation is the outcome of comparing the previous and next
// value of one attachment field.
type Reconciliation struct {
	ToDelete []string
	ToKeep   []string
}

// ReconcileSingle compares a single-valued attachment field.
// next is nil when the field was omitted from the patch; the existing
// value is then left untouched. When next is present and differs from
// prev, prev is marked for deletion.
func ReconcileSingle(prev string, next *string) Reconciliation {
	if next == nil {
		var keep []string
		if prev != "" {
			keep = []string{prev}
		}
		return Reconciliation{ToKeep: keep}
	}
	var rec Reconciliation
	if *next != "" {
		rec.ToKeep = []string{*next}
	}
	if prev != "" && prev != *next {
		rec.ToDelete = []string{prev}
	}
	return rec
}

// ReconcileList compares a list-valued attachment field whose next
// value is present in the patch. Every path in prev but absent from
// next is marked for deletion; paths in next are kept regardless of
// position, so a pure reorder deletes nothing.
func ReconcileList(prev, next []string) Reconciliation {
	kept := make(map[string]struct{}, len(next))
	for _, p := range next {
		kept[normalize(p)] = struct{}{}
	}
	rec := Reconciliation{ToKeep: append([]string(nil), next...)}
	seen := make(map[string]struct{}, len(prev))
	for _, p := range prev {
		n := normalize(p)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := kept[n]; !ok {
			rec.ToDelete = append(rec.ToDelete, p)
		}
	}
	return rec
}

// normalize makes path comparison separator-insensitive; stored values
// should already use forward slashes but legacy rows may not.
func normalize(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
