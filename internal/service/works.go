package service

import (
	"time"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/model"
	"viscart/internal/repository"
)

// Works is the portfolio resource service. It carries two attachment
// fields: the single main image and the ordered extra-images list.
type Works = Resource[model.Work, model.WorkPatch]

// NewWorks wires the portfolio resource.
func NewWorks(store repository.ResourceStore[model.Work, model.WorkPatch], purger *attachment.Purger, urls *fileurl.Formatter) *Works {
	return NewResource(store, purger, urls, Descriptor[model.Work, model.WorkPatch]{
		Kind:    "work",
		New:     func() *model.Work { return &model.Work{Status: true} },
		HasSlug: true,
		Name:    func(w *model.Work) string { return w.Name },
		SetSlug: func(w *model.Work, s string) { w.Slug = s },
		Init: func(w *model.Work, id string, now time.Time) {
			w.ID, w.CreatedAt, w.UpdatedAt = id, now, now
		},
		Attachments: []AttachmentField[model.Work, model.WorkPatch]{
			singleField("mainImage",
				func(w *model.Work) *string { return &w.MainImage },
				func(p *model.WorkPatch) *string { return p.MainImage },
			),
			listField("images",
				func(w *model.Work) *model.StringList { return &w.Images },
				func(p *model.WorkPatch) *model.StringList { return p.Images },
			),
		},
		DefaultSearchFields: []string{"name", "description"},
	})
}
