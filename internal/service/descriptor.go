package service

import "time"

// Descriptor tells the generic resource service what is special about
// one content type: how to initialize a fresh record, whether it
// carries a slug, which fields hold attachment paths, and which fields
// the list search covers by default. Everything else is uniform.
type Descriptor[T, P any] struct {
	// Kind is the lowercase singular type name, used in errors and logs.
	Kind string

	// New returns a record pre-filled with the type's defaults
	// (notably status=true). Request decoding overlays it.
	New func() *T

	// HasSlug marks types whose slug is derived from the name at
	// creation. Name must return the record's name; SetSlug stores the
	// derived slug.
	HasSlug bool
	Name    func(*T) string
	SetSlug func(*T, string)

	// Init assigns the system-managed identity and timestamps.
	Init func(rec *T, id string, now time.Time)

	// Attachments lists every attachment-bearing field.
	Attachments []AttachmentField[T, P]

	// DefaultSearchFields is used when a list request gives search
	// text without naming fields.
	DefaultSearchFields []string
}

// AttachmentField describes one attachment-bearing field uniformly for
// single and list cardinality: a single field reads and writes as a
// zero- or one-element slice.
type AttachmentField[T, P any] struct {
	Name string
	// List is true for ordered multi-path fields.
	List bool
	// Get returns the stored relative paths.
	Get func(*T) []string
	// Set replaces the field's paths (used for URL formatting).
	Set func(*T, []string)
	// FromPatch returns the field's next value and whether the patch
	// carries the field at all. Absent means leave untouched.
	FromPatch func(*P) ([]string, bool)
}
