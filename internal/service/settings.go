package service

import (
	"time"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/model"
	"viscart/internal/repository"
)

// SiteSettings is the site-wide settings resource service. The table
// holds a single row read through GetFirst; each of its ten image
// fields reconciles independently on update.
type SiteSettings = Resource[model.Settings, model.SettingsPatch]

// NewSiteSettings wires the settings resource.
func NewSiteSettings(store repository.ResourceStore[model.Settings, model.SettingsPatch], purger *attachment.Purger, urls *fileurl.Formatter) *SiteSettings {
	return NewResource(store, purger, urls, Descriptor[model.Settings, model.SettingsPatch]{
		Kind: "settings",
		New: func() *model.Settings {
			return &model.Settings{Name: "Viscart", Currency: "৳", Status: true}
		},
		Init: func(s *model.Settings, id string, now time.Time) {
			s.ID, s.CreatedAt, s.UpdatedAt = id, now, now
		},
		Attachments: settingsImageFields(),
	})
}

// settingsImageFields declares the ten single-valued image fields.
func settingsImageFields() []AttachmentField[model.Settings, model.SettingsPatch] {
	type img struct {
		name  string
		fld   func(*model.Settings) *string
		patch func(*model.SettingsPatch) *string
	}
	imgs := []img{
		{"logo", func(s *model.Settings) *string { return &s.Logo }, func(p *model.SettingsPatch) *string { return p.Logo }},
		{"favicon", func(s *model.Settings) *string { return &s.Favicon }, func(p *model.SettingsPatch) *string { return p.Favicon }},
		{"aboutBanner", func(s *model.Settings) *string { return &s.AboutBanner }, func(p *model.SettingsPatch) *string { return p.AboutBanner }},
		{"serviceBanner", func(s *model.Settings) *string { return &s.ServiceBanner }, func(p *model.SettingsPatch) *string { return p.ServiceBanner }},
		{"workBanner", func(s *model.Settings) *string { return &s.WorkBanner }, func(p *model.SettingsPatch) *string { return p.WorkBanner }},
		{"processBanner", func(s *model.Settings) *string { return &s.ProcessBanner }, func(p *model.SettingsPatch) *string { return p.ProcessBanner }},
		{"galleryBanner", func(s *model.Settings) *string { return &s.GalleryBanner }, func(p *model.SettingsPatch) *string { return p.GalleryBanner }},
		{"shopBanner", func(s *model.Settings) *string { return &s.ShopBanner }, func(p *model.SettingsPatch) *string { return p.ShopBanner }},
		{"contactBanner", func(s *model.Settings) *string { return &s.ContactBanner }, func(p *model.SettingsPatch) *string { return p.ContactBanner }},
		{"blogBanner", func(s *model.Settings) *string { return &s.BlogBanner }, func(p *model.SettingsPatch) *string { return p.BlogBanner }},
	}
	fields := make([]AttachmentField[model.Settings, model.SettingsPatch], 0, len(imgs))
	for _, im := range imgs {
		fields = append(fields, singleField(im.name, im.fld, im.patch))
	}
	return fields
}
