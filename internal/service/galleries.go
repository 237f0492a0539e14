package service

import (
	"time"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/model"
	"viscart/internal/repository"
)

// Galleries is the gallery resource service.
type Galleries = Resource[model.Gallery, model.GalleryPatch]

// NewGalleries wires the gallery resource.
func NewGalleries(store repository.ResourceStore[model.Gallery, model.GalleryPatch], purger *attachment.Purger, urls *fileurl.Formatter) *Galleries {
	return NewResource(store, purger, urls, Descriptor[model.Gallery, model.GalleryPatch]{
		Kind: "gallery",
		New:  func() *model.Gallery { return &model.Gallery{Status: true} },
		Init: func(g *model.Gallery, id string, now time.Time) {
			g.ID, g.CreatedAt, g.UpdatedAt = id, now, now
		},
		Attachments: []AttachmentField[model.Gallery, model.GalleryPatch]{
			singleField("attachment",
				func(g *model.Gallery) *string { return &g.Attachment },
				func(p *model.GalleryPatch) *string { return p.Attachment },
			),
		},
		DefaultSearchFields: []string{"name"},
	})
}
