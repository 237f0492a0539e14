package service

import (
	"time"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/model"
	"viscart/internal/repository"
)

// Sliders is the homepage slider resource service.
type Sliders = Resource[model.Slider, model.SliderPatch]

// NewSliders wires the slider resource.
func NewSliders(store repository.ResourceStore[model.Slider, model.SliderPatch], purger *attachment.Purger, urls *fileurl.Formatter) *Sliders {
	return NewResource(store, purger, urls, Descriptor[model.Slider, model.SliderPatch]{
		Kind: "slider",
		New:  func() *model.Slider { return &model.Slider{Status: true} },
		Init: func(s *model.Slider, id string, now time.Time) {
			s.ID, s.CreatedAt, s.UpdatedAt = id, now, now
		},
		Attachments: []AttachmentField[model.Slider, model.SliderPatch]{
			singleField("attachment",
				func(s *model.Slider) *string { return &s.Attachment },
				func(p *model.SliderPatch) *string { return p.Attachment },
			),
		},
		DefaultSearchFields: []string{"name"},
	})
}
