package service

import (
	"time"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/model"
	"viscart/internal/repository"
)

// Brands is the brand resource service.
type Brands = Resource[model.Brand, model.BrandPatch]

// NewBrands wires the brand resource.
func NewBrands(store repository.ResourceStore[model.Brand, model.BrandPatch], purger *attachment.Purger, urls *fileurl.Formatter) *Brands {
	return NewResource(store, purger, urls, Descriptor[model.Brand, model.BrandPatch]{
		Kind: "brand",
		New:  func() *model.Brand { return &model.Brand{Status: true} },
		Init: func(b *model.Brand, id string, now time.Time) {
			b.ID, b.CreatedAt, b.UpdatedAt = id, now, now
		},
		Attachments: []AttachmentField[model.Brand, model.BrandPatch]{
			singleField("attachment",
				func(b *model.Brand) *string { return &b.Attachment },
				func(p *model.BrandPatch) *string { return p.Attachment },
			),
		},
		DefaultSearchFields: []string{"name"},
	})
}
