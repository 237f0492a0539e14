package model

import "time"

// Post is a blog entry. Name and Slug are unique; Slug is derived from
// Name once at creation and never regenerated on rename.
type Post struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"shortDescription"`
	Content          string    `json:"content"`
	PublishedAt      string    `json:"publishedAt"`
	Attachment       string    `json:"attachment"`
	Status           bool      `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// PostPatch is a partial update; nil fields are left untouched.
type PostPatch struct {
	Name             *string `json:"name"`
	ShortDescription *string `json:"shortDescription"`
	Content          *string `json:"content"`
	PublishedAt      *string `json:"publishedAt"`
	Attachment       *string `json:"attachment"`
	Status           *bool   `json:"status"`
}

// Brand is a partner/brand logo entry.
type Brand struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Attachment string    `json:"attachment"`
	Status     bool      `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BrandPatch struct {
	Name       *string `json:"name"`
	Attachment *string `json:"attachment"`
	Status     *bool   `json:"status"`
}

// Gallery is a single gallery image.
type Gallery struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	IsFeatured bool      `json:"isFeatured"`
	Attachment string    `json:"attachment"`
	Status     bool      `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type GalleryPatch struct {
	Name       *string `json:"name"`
	IsFeatured *bool   `json:"isFeatured"`
	Attachment *string `json:"attachment"`
	Status     *bool   `json:"status"`
}

// Service is an offered business service with a bullet list.
type Service struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	List        StringList `json:"list"`
	Attachment  string     `json:"attachment"`
	Status      bool       `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ServicePatch struct {
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	List        *StringList `json:"list"`
	Attachment  *string     `json:"attachment"`
	Status      *bool       `json:"status"`
}

// Shop is a physical shop/outlet entry.
type Shop struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Attachment  string    `json:"attachment"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ShopPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Attachment  *string `json:"attachment"`
	Status      *bool   `json:"status"`
}

// Slider is a homepage slider image.
type Slider struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ButtonText   string    `json:"buttonText"`
	BottomBanner bool      `json:"bottomBanner"`
	Attachment   string    `json:"attachment"`
	Status       bool      `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SliderPatch struct {
	Name         *string `json:"name"`
	ButtonText   *string `json:"buttonText"`
	BottomBanner *bool   `json:"bottomBanner"`
	Attachment   *string `json:"attachment"`
	Status       *bool   `json:"status"`
}

// Work is a portfolio item carrying a main image plus an ordered set
// of additional images. Image order affects presentation only; a
// reordered list is not a changed file set.
type Work struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	MainImage   string     `json:"mainImage"`
	Images      StringList `json:"images"`
	Status      bool       `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type WorkPatch struct {
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	MainImage   *string     `json:"mainImage"`
	Images      *StringList `json:"images"`
	Status      *bool       `json:"status"`
}

// Newsletter is a newsletter subscriber; email is unique.
type Newsletter struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NewsletterPatch struct {
	Email  *string `json:"email"`
	Status *bool   `json:"status"`
}
