package service

import (
	"time"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/model"
	"viscart/internal/repository"
)

// Newsletters is the newsletter subscriber resource service. It has no
// attachment fields; the engine still gives it search and pagination.
type Newsletters = Resource[model.Newsletter, model.NewsletterPatch]

// NewNewsletters wires the newsletter resource.
func NewNewsletters(store repository.ResourceStore[model.Newsletter, model.NewsletterPatch], purger *attachment.Purger, urls *fileurl.Formatter) *Newsletters {
	return NewResource(store, purger, urls, Descriptor[model.Newsletter, model.NewsletterPatch]{
		Kind: "newsletter",
		New:  func() *model.Newsletter { return &model.Newsletter{Status: true} },
		Init: func(n *model.Newsletter, id string, now time.Time) {
			n.ID, n.CreatedAt, n.UpdatedAt = id, now, now
		},
		DefaultSearchFields: []string{"email"},
	})
}
