package service

import (
	"time"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/model"
	"viscart/internal/repository"
)

// Users is the account profile resource service. Credentials and
// password history live in the auth subsystem, not here.
type Users = Resource[model.User, model.UserPatch]

// NewUsers wires the user profile resource.
func NewUsers(store repository.ResourceStore[model.User, model.UserPatch], purger *attachment.Purger, urls *fileurl.Formatter) *Users {
	return NewResource(store, purger, urls, Descriptor[model.User, model.UserPatch]{
		Kind: "user",
		New:  func() *model.User { return &model.User{Status: true, Role: "user"} },
		Init: func(u *model.User, id string, now time.Time) {
			u.ID, u.CreatedAt, u.UpdatedAt = id, now, now
		},
		Attachments: []AttachmentField[model.User, model.UserPatch]{
			singleField("profileImage",
				func(u *model.User) *string { return &u.ProfileImage },
				func(p *model.UserPatch) *string { return p.ProfileImage },
			),
		},
		DefaultSearchFields: []string{"name", "email", "number"},
	})
}
