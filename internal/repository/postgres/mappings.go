package postgres

import "viscart/internal/model"

// Per-type mappings. These are the only type-specific pieces of the
// persistence layer: column lists, row scanning, and patch assignment.

// assigns accumulates SET columns for a partial update.
type assigns struct {
	cols []string
	args []any
}

func setIf[V any](a *assigns, col string, v *V) {
	if v != nil {
		a.cols = append(a.cols, col)
		a.args = append(a.args, *v)
	}
}

// PostMapping binds model.Post to the posts table.
func PostMapping() Mapping[model.Post, model.PostPatch] {
	return Mapping[model.Post, model.PostPatch]{
		Table: "posts",
		Columns: []string{
			"id", "name", "slug", "short_description", "content",
			"published_at", "attachment", "status", "created_at", "updated_at",
		},
		Scan: func(rs RowScanner) (*model.Post, error) {
			var p model.Post
			if err := rs.Scan(
				&p.ID, &p.Name, &p.Slug, &p.ShortDescription, &p.Content,
				&p.PublishedAt, &p.Attachment, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &p, nil
		},
		InsertArgs: func(p *model.Post) []any {
			return []any{
				p.ID, p.Name, p.Slug, p.ShortDescription, p.Content,
				p.PublishedAt, p.Attachment, p.Status, p.CreatedAt, p.UpdatedAt,
			}
		},
		PatchAssign: func(patch *model.PostPatch) ([]string, []any) {
			var a assigns
			setIf(&a, "name", patch.Name)
			setIf(&a, "short_description", patch.ShortDescription)
			setIf(&a, "content", patch.Content)
			setIf(&a, "published_at", patch.PublishedAt)
			setIf(&a, "attachment", patch.Attachment)
			setIf(&a, "status", patch.Status)
			return a.cols, a.args
		},
		Searchable: map[string]string{
			"name":             "name",
			"shortDescription": "short_description",
			"content":          "content",
		},
		SlugColumn: "slug",
	}
}

// BrandMapping binds model.Brand to the brands table.
func BrandMapping() Mapping[model.Brand, model.BrandPatch] {
	return Mapping[model.Brand, model.BrandPatch]{
		Table:   "brands",
		Columns: []string{"id", "name", "attachment", "status", "created_at", "updated_at"},
		Scan: func(rs RowScanner) (*model.Brand, error) {
			var b model.Brand
			if err := rs.Scan(&b.ID, &b.Name, &b.Attachment, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
				return nil, err
			}
			return &b, nil
		},
		InsertArgs: func(b *model.Brand) []any {
			return []any{b.ID, b.Name, b.Attachment, b.Status, b.CreatedAt, b.UpdatedAt}
		},
		PatchAssign: func(patch *model.BrandPatch) ([]string, []any) {
			var a assigns
			setIf(&a, "name", patch.Name)
			setIf(&a, "attachment", patch.Attachment)
			setIf(&a, "status", patch.Status)
			return a.cols, a.args
		},
		Searchable: map[string]string{"name": "name"},
	}
}

// GalleryMapping binds model.Gallery to the galleries table.
func GalleryMapping() Mapping[model.Gallery, model.GalleryPatch] {
	return Mapping[model.Gallery, model.GalleryPatch]{
		Table:   "galleries",
		Columns: []string{"id", "name", "is_featured", "attachment", "status", "created_at", "updated_at"},
		Scan: func(rs RowScanner) (*model.Gallery, error) {
			var g model.Gallery
			if err := rs.Scan(&g.ID, &g.Name, &g.IsFeatured, &g.Attachment, &g.Status, &g.CreatedAt, &g.UpdatedAt); err != nil {
				return nil, err
			}
			return &g, nil
		},
		InsertArgs: func(g *model.Gallery) []any {
			return []any{g.ID, g.Name, g.IsFeatured, g.Attachment, g.Status, g.CreatedAt, g.UpdatedAt}
		},
		PatchAssign: func(patch *model.GalleryPatch) ([]string, []any) {
			var a assigns
			setIf(&a, "name", patch.Name)
			setIf(&a, "is_featured", patch.IsFeatured)
			setIf(&a, "attachment", patch.Attachment)
			setIf(&a, "status", patch.Status)
			return a.cols, a.args
		},
		Searchable: map[string]string{"name": "name"},
	}
}

// ServiceMapping binds model.Service to the services table.
func ServiceMapping() Mapping[model.Service, model.ServicePatch] {
	return Mapping[model.Service, model.ServicePatch]{
		Table: "services",
		Columns: []string{
			"id", "name", "slug", "description", "list",
			"attachment", "status", "created_at", "updated_at",
		},
		Scan: func(rs RowScanner) (*model.Service, error) {
			var s model.Service
			if err := rs.Scan(
				&s.ID, &s.Name, &s.Slug, &s.Description, &s.List,
				&s.Attachment, &s.Status, &s.CreatedAt, &s.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &s, nil
		},
		InsertArgs: func(s *model.Service) []any {
			return []any{
				s.ID, s.Name, s.Slug, s.Description, s.List,
				s.Attachment, s.Status, s.CreatedAt, s.UpdatedAt,
			}
		},
		PatchAssign: func(patch *model.ServicePatch) ([]string, []any) {
			var a assigns
			setIf(&a, "name", patch.Name)
			setIf(&a, "description", patch.Description)
			setIf(&a, "list", patch.List)
			setIf(&a, "attachment", patch.Attachment)
			setIf(&a, "status", patch.Status)
			return a.cols, a.args
		},
		Searchable: map[string]string{"name": "name", "description": "description"},
		SlugColumn: "slug",
	}
}

// ShopMapping binds model.Shop to the shops table.
func ShopMapping() Mapping[model.Shop, model.ShopPatch] {
	return Mapping[model.Shop, model.ShopPatch]{
		Table:   "shops",
		Columns: []string{"id", "name", "description", "attachment", "status", "created_at", "updated_at"},
		Scan: func(rs RowScanner) (*model.Shop, error) {
			var s model.Shop
			if err := rs.Scan(&s.ID, &s.Name, &s.Description, &s.Attachment, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
				return nil, err
			}
			return &s, nil
		},
		InsertArgs: func(s *model.Shop) []any {
			return []any{s.ID, s.Name, s.Description, s.Attachment, s.Status, s.CreatedAt, s.UpdatedAt}
		},
		PatchAssign: func(patch *model.ShopPatch) ([]string, []any) {
			var a assigns
			setIf(&a, "name", patch.Name)
			setIf(&a, "description", patch.Description)
			setIf(&a, "attachment", patch.Attachment)
			setIf(&a, "status", patch.Status)
			return a.cols, a.args
		},
		Searchable: map[string]string{"name": "name", "description": "description"},
	}
}

// SliderMapping binds model.Slider to the sliders table.
func SliderMapping() Mapping[model.Slider, model.SliderPatch] {
	return Mapping[model.Slider, model.SliderPatch]{
		Table: "sliders",
		Columns: []string{
			"id", "name", "button_text", "bottom_banner",
			"attachment", "status", "created_at", "updated_at",
		},
		Scan: func(rs RowScanner) (*model.Slider, error) {
			var s model.Slider
			if err := rs.Scan(
				&s.ID, &s.Name, &s.ButtonText, &s.BottomBanner,
				&s.Attachment, &s.Status, &s.CreatedAt, &s.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &s, nil
		},
		InsertArgs: func(s *model.Slider) []any {
			return []any{
				s.ID, s.Name, s.ButtonText, s.BottomBanner,
				s.Attachment, s.Status, s.CreatedAt, s.UpdatedAt,
			}
		},
		PatchAssign: func(patch *model.SliderPatch) ([]string, []any) {
			var a assigns
			setIf(&a, "name", patch.Name)
			setIf(&a, "button_text", patch.ButtonText)
			setIf(&a, "bottom_banner", patch.BottomBanner)
			setIf(&a, "attachment", patch.Attachment)
			setIf(&a, "status", patch.Status)
			return a.cols, a.args
		},
		Searchable: map[string]string{"name": "name"},
	}
}

// WorkMapping binds model.Work to the works table.
func WorkMapping() Mapping[model.Work, model.WorkPatch] {
	return Mapping[model.Work, model.WorkPatch]{
		Table: "works",
		Columns: []string{
			"id", "name", "slug", "description", "main_image",
			"images", "status", "created_at", "updated_at",
		},
		Scan: func(rs RowScanner) (*model.Work, error) {
			var w model.Work
			if err := rs.Scan(
				&w.ID, &w.Name, &w.Slug, &w.Description, &w.MainImage,
				&w.Images, &w.Status, &w.CreatedAt, &w.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &w, nil
		},
		InsertArgs: func(w *model.Work) []any {
			return []any{
				w.ID, w.Name, w.Slug, w.Description, w.MainImage,
				w.Images, w.Status, w.CreatedAt, w.UpdatedAt,
			}
		},
		PatchAssign: func(patch *model.WorkPatch) ([]string, []any) {
			var a assigns
			setIf(&a, "name", patch.Name)
			setIf(&a, "description", patch.Description)
			setIf(&a, "main_image", patch.MainImage)
			setIf(&a, "images", patch.Images)
			setIf(&a, "status", patch.Status)
			return a.cols, a.args
		},
		Searchable: map[string]string{"name": "name", "description": "description"},
		SlugColumn: "slug",
	}
}

// NewsletterMapping binds model.Newsletter to the newsletters table.
func NewsletterMapping() Mapping[model.Newsletter, model.NewsletterPatch] {
	return Mapping[model.Newsletter, model.NewsletterPatch]{
		Table:   "newsletters",
		Columns: []string{"id", "email", "status", "created_at", "updated_at"},
		Scan: func(rs RowScanner) (*model.Newsletter, error) {
			var n model.Newsletter
			if err := rs.Scan(&n.ID, &n.Email, &n.Status, &n.CreatedAt, &n.UpdatedAt); err != nil {
				return nil, err
			}
			return &n, nil
		},
		InsertArgs: func(n *model.Newsletter) []any {
			return []any{n.ID, n.Email, n.Status, n.CreatedAt, n.UpdatedAt}
		},
		PatchAssign: func(patch *model.NewsletterPatch) ([]string, []any) {
			var a assigns
			setIf(&a, "email", patch.Email)
			setIf(&a, "status", patch.Status)
			return a.cols, a.args
		},
		Searchable: map[string]string{"email": "email"},
	}
}

// UserMapping binds model.User to the users table.
func UserMapping() Mapping[model.User, model.UserPatch] {
	return Mapping[model.User, model.UserPatch]{
		Table: "users",
		Columns: []string{
			"id", "name", "email", "number", "address", "role",
			"profile_image", "status", "created_at", "updated_at",
		},
		Scan: func(rs RowScanner) (*model.User, error) {
			var u model.User
			if err := rs.Scan(
				&u.ID, &u.Name, &u.Email, &u.Number, &u.Address, &u.Role,
				&u.ProfileImage, &u.Status, &u.CreatedAt, &u.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &u, nil
		},
		InsertArgs: func(u *model.User) []any {
			return []any{
				u.ID, u.Name, u.Email, u.Number, u.Address, u.Role,
				u.ProfileImage, u.Status, u.CreatedAt, u.UpdatedAt,
			}
		},
		PatchAssign: func(patch *model.UserPatch) ([]string, []any) {
			var a assigns
			setIf(&a, "name", patch.Name)
			setIf(&a, "email", patch.Email)
			setIf(&a, "number", patch.Number)
			setIf(&a, "address", patch.Address)
			setIf(&a, "role", patch.Role)
			setIf(&a, "profile_image", patch.ProfileImage)
			setIf(&a, "status", patch.Status)
			return a.cols, a.args
		},
		Searchable: map[string]string{"name": "name", "email": "email", "number": "number"},
	}
}

// SettingsMapping binds model.Settings to the settings table.
func SettingsMapping() Mapping[model.Settings, model.SettingsPatch] {
	return Mapping[model.Settings, model.SettingsPatch]{
		Table: "settings",
		Columns: []string{
			"id", "name", "description", "business_number", "business_address",
			"business_location", "business_slogan", "business_email",
			"business_facebook", "business_instagram", "business_twitter",
			"business_linkedin", "business_youtube", "business_whatsapp",
			"business_work_hours", "primary_color", "secondary_color",
			"logo", "favicon", "about_banner", "service_banner", "work_banner",
			"process_banner", "gallery_banner", "shop_banner", "contact_banner",
			"blog_banner", "currency", "delivery", "payment_terms",
			"pickup_point", "privacy_policy", "refund_and_returns",
			"terms_and_conditions", "ssl", "status", "created_at", "updated_at",
		},
		Scan: func(rs RowScanner) (*model.Settings, error) {
			var s model.Settings
			if err := rs.Scan(
				&s.ID, &s.Name, &s.Description, &s.BusinessNumber, &s.BusinessAddress,
				&s.BusinessLocation, &s.BusinessSlogan, &s.BusinessEmail,
				&s.BusinessFacebook, &s.BusinessInstagram, &s.BusinessTwitter,
				&s.BusinessLinkedin, &s.BusinessYoutube, &s.BusinessWhatsapp,
				&s.BusinessWorkHours, &s.PrimaryColor, &s.SecondaryColor,
				&s.Logo, &s.Favicon, &s.AboutBanner, &s.ServiceBanner, &s.WorkBanner,
				&s.ProcessBanner, &s.GalleryBanner, &s.ShopBanner, &s.ContactBanner,
				&s.BlogBanner, &s.Currency, &s.Delivery, &s.PaymentTerms,
				&s.PickupPoint, &s.PrivacyPolicy, &s.RefundAndReturns,
				&s.TermsAndConditions, &s.SSL, &s.Status, &s.CreatedAt, &s.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &s, nil
		},
		InsertArgs: func(s *model.Settings) []any {
			return []any{
				s.ID, s.Name, s.Description, s.BusinessNumber, s.BusinessAddress,
				s.BusinessLocation, s.BusinessSlogan, s.BusinessEmail,
				s.BusinessFacebook, s.BusinessInstagram, s.BusinessTwitter,
				s.BusinessLinkedin, s.BusinessYoutube, s.BusinessWhatsapp,
				s.BusinessWorkHours, s.PrimaryColor, s.SecondaryColor,
				s.Logo, s.Favicon, s.AboutBanner, s.ServiceBanner, s.WorkBanner,
				s.ProcessBanner, s.GalleryBanner, s.ShopBanner, s.ContactBanner,
				s.BlogBanner, s.Currency, s.Delivery, s.PaymentTerms,
				s.PickupPoint, s.PrivacyPolicy, s.RefundAndReturns,
				s.TermsAndConditions, s.SSL, s.Status, s.CreatedAt, s.UpdatedAt,
			}
		},
		PatchAssign: func(patch *model.SettingsPatch) ([]string, []any) {
			var a assigns
			setIf(&a, "name", patch.Name)
			setIf(&a, "description", patch.Description)
			setIf(&a, "business_number", patch.BusinessNumber)
			setIf(&a, "business_address", patch.BusinessAddress)
			setIf(&a, "business_location", patch.BusinessLocation)
			setIf(&a, "business_slogan", patch.BusinessSlogan)
			setIf(&a, "business_email", patch.BusinessEmail)
			setIf(&a, "business_facebook", patch.BusinessFacebook)
			setIf(&a, "business_instagram", patch.BusinessInstagram)
			setIf(&a, "business_twitter", patch.BusinessTwitter)
			setIf(&a, "business_linkedin", patch.BusinessLinkedin)
			setIf(&a, "business_youtube", patch.BusinessYoutube)
			setIf(&a, "business_whatsapp", patch.BusinessWhatsapp)
			setIf(&a, "business_work_hours", patch.BusinessWorkHours)
			setIf(&a, "primary_color", patch.PrimaryColor)
			setIf(&a, "secondary_color", patch.SecondaryColor)
			setIf(&a, "logo", patch.Logo)
			setIf(&a, "favicon", patch.Favicon)
			setIf(&a, "about_banner", patch.AboutBanner)
			setIf(&a, "service_banner", patch.ServiceBanner)
			setIf(&a, "work_banner", patch.WorkBanner)
			setIf(&a, "process_banner", patch.ProcessBanner)
			setIf(&a, "gallery_banner", patch.GalleryBanner)
			setIf(&a, "shop_banner", patch.ShopBanner)
			setIf(&a, "contact_banner", patch.ContactBanner)
			setIf(&a, "blog_banner", patch.BlogBanner)
			setIf(&a, "currency", patch.Currency)
			setIf(&a, "delivery", patch.Delivery)
			setIf(&a, "payment_terms", patch.PaymentTerms)
			setIf(&a, "pickup_point", patch.PickupPoint)
			setIf(&a, "privacy_policy", patch.PrivacyPolicy)
			setIf(&a, "refund_and_returns", patch.RefundAndReturns)
			setIf(&a, "terms_and_conditions", patch.TermsAndConditions)
			setIf(&a, "ssl", patch.SSL)
			setIf(&a, "status", patch.Status)
			return a.cols, a.args
		},
	}
}
