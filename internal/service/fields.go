package service

import "viscart/internal/model"

// singleField builds an AttachmentField for a single-valued path
// field. fld must return a pointer to the record's field, pfld the
// patch's pointer field (nil when omitted from the patch).
func singleField[T, P any](name string, fld func(*T) *string, pfld func(*P) *string) AttachmentField[T, P] {
	return AttachmentField[T, P]{
		Name: name,
		Get: func(rec *T) []string {
			if v := *fld(rec); v != "" {
				return []string{v}
			}
			return nil
		},
		Set: func(rec *T, vals []string) {
			if len(vals) == 0 {
				*fld(rec) = ""
				return
			}
			*fld(rec) = vals[0]
		},
		FromPatch: func(p *P) ([]string, bool) {
			v := pfld(p)
			if v == nil {
				return nil, false
			}
			if *v == "" {
				return nil, true
			}
			return []string{*v}, true
		},
	}
}

// listField builds an AttachmentField for an ordered multi-path field.
func listField[T, P any](name string, fld func(*T) *model.StringList, pfld func(*P) *model.StringList) AttachmentField[T, P] {
	return AttachmentField[T, P]{
		Name: name,
		List: true,
		Get: func(rec *T) []string {
			return []string(*fld(rec))
		},
		Set: func(rec *T, vals []string) {
			*fld(rec) = model.StringList(vals)
		},
		FromPatch: func(p *P) ([]string, bool) {
			v := pfld(p)
			if v == nil {
				return nil, false
			}
			return []string(*v), true
		},
	}
}
