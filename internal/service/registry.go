package service

import (
	"database/sql"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/repository/postgres"
	"viscart/internal/storage"
)

// Registry aggregates every content resource service over one database
// connection, one storage backend, and one shared URL formatter.
type Registry struct {
	Posts       *Posts
	Brands      *Brands
	Galleries   *Galleries
	Services    *OfferedServices
	Shops       *Shops
	Sliders     *Sliders
	Works       *Works
	Newsletters *Newsletters
	Users       *Users
	Settings    *SiteSettings
}

// NewRegistry wires every resource against PostgreSQL and the given
// storage backend. baseURL qualifies attachment paths at read time.
func NewRegistry(db *sql.DB, store storage.Storage, baseURL string) *Registry {
	purger := attachment.NewPurger(store)
	urls := fileurl.New(baseURL)

	return &Registry{
		Posts:       NewPosts(postgres.NewResource(db, postgres.PostMapping()), purger, urls),
		Brands:      NewBrands(postgres.NewResource(db, postgres.BrandMapping()), purger, urls),
		Galleries:   NewGalleries(postgres.NewResource(db, postgres.GalleryMapping()), purger, urls),
		Services:    NewOfferedServices(postgres.NewResource(db, postgres.ServiceMapping()), purger, urls),
		Shops:       NewShops(postgres.NewResource(db, postgres.ShopMapping()), purger, urls),
		Sliders:     NewSliders(postgres.NewResource(db, postgres.SliderMapping()), purger, urls),
		Works:       NewWorks(postgres.NewResource(db, postgres.WorkMapping()), purger, urls),
		Newsletters: NewNewsletters(postgres.NewResource(db, postgres.NewsletterMapping()), purger, urls),
		Users:       NewUsers(postgres.NewResource(db, postgres.UserMapping()), purger, urls),
		Settings:    NewSiteSettings(postgres.NewResource(db, postgres.SettingsMapping()), purger, urls),
	}
}
