package service

import (
	"time"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/model"
	"viscart/internal/repository"
)

// Shops is the shop resource service.
type Shops = Resource[model.Shop, model.ShopPatch]

// NewShops wires the shop resource.
func NewShops(store repository.ResourceStore[model.Shop, model.ShopPatch], purger *attachment.Purger, urls *fileurl.Formatter) *Shops {
	return NewResource(store, purger, urls, Descriptor[model.Shop, model.ShopPatch]{
		Kind: "shop",
		New:  func() *model.Shop { return &model.Shop{Status: true} },
		Init: func(s *model.Shop, id string, now time.Time) {
			s.ID, s.CreatedAt, s.UpdatedAt = id, now, now
		},
		Attachments: []AttachmentField[model.Shop, model.ShopPatch]{
			singleField("attachment",
				func(s *model.Shop) *string { return &s.Attachment },
				func(p *model.ShopPatch) *string { return p.Attachment },
			),
		},
		DefaultSearchFields: []string{"name", "description"},
	})
}
