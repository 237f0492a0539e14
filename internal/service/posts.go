package service

import (
	"time"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/model"
	"viscart/internal/repository"
)

// Posts is the blog resource service.
type Posts = Resource[model.Post, model.PostPatch]

// NewPosts wires the blog resource.
func NewPosts(store repository.ResourceStore[model.Post, model.PostPatch], purger *attachment.Purger, urls *fileurl.Formatter) *Posts {
	return NewResource(store, purger, urls, Descriptor[model.Post, model.PostPatch]{
		Kind:    "post",
		New:     func() *model.Post { return &model.Post{Status: true} },
		HasSlug: true,
		Name:    func(p *model.Post) string { return p.Name },
		SetSlug: func(p *model.Post, s string) { p.Slug = s },
		Init: func(p *model.Post, id string, now time.Time) {
			p.ID, p.CreatedAt, p.UpdatedAt = id, now, now
		},
		Attachments: []AttachmentField[model.Post, model.PostPatch]{
			singleField("attachment",
				func(p *model.Post) *string { return &p.Attachment },
				func(p *model.PostPatch) *string { return p.Attachment },
			),
		},
		DefaultSearchFields: []string{"name", "shortDescription"},
	})
}
