package service

import (
	"time"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/model"
	"viscart/internal/repository"
)

// OfferedServices is the resource service for offered business
// services. The bullet list field is plain content, not attachments.
type OfferedServices = Resource[model.Service, model.ServicePatch]

// NewOfferedServices wires the offered-services resource.
func NewOfferedServices(store repository.ResourceStore[model.Service, model.ServicePatch], purger *attachment.Purger, urls *fileurl.Formatter) *OfferedServices {
	return NewResource(store, purger, urls, Descriptor[model.Service, model.ServicePatch]{
		Kind:    "service",
		New:     func() *model.Service { return &model.Service{Status: true} },
		HasSlug: true,
		Name:    func(s *model.Service) string { return s.Name },
		SetSlug: func(s *model.Service, slug string) { s.Slug = slug },
		Init: func(s *model.Service, id string, now time.Time) {
			s.ID, s.CreatedAt, s.UpdatedAt = id, now, now
		},
		Attachments: []AttachmentField[model.Service, model.ServicePatch]{
			singleField("attachment",
				func(s *model.Service) *string { return &s.Attachment },
				func(p *model.ServicePatch) *string { return p.Attachment },
			),
		},
		DefaultSearchFields: []string{"name", "description"},
	})
}
