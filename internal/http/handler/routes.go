package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"viscart/internal/service"
)

// HealthCheck reports readiness: the database must answer a ping.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a plain liveness check with no dependencies.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterRoutes attaches every HTTP route to the provided Fiber app:
// health probes and the CRUD surface of each content type under /api.
func RegisterRoutes(app *fiber.App, db *sql.DB, reg *service.Registry) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	RegisterResource(api.Group("/posts"), reg.Posts)
	RegisterResource(api.Group("/brands"), reg.Brands)
	RegisterResource(api.Group("/galleries"), reg.Galleries)
	RegisterResource(api.Group("/services"), reg.Services)
	RegisterResource(api.Group("/shops"), reg.Shops)
	RegisterResource(api.Group("/sliders"), reg.Sliders)
	RegisterResource(api.Group("/works"), reg.Works)
	RegisterResource(api.Group("/newsletters"), reg.Newsletters)
	RegisterResource(api.Group("/users"), reg.Users)

	// Settings is a singleton in practice; /first serves the site
	// configuration without requiring the caller to know its id.
	settings := api.Group("/settings")
	settings.Get("/first", GetFirstResource(reg.Settings))
	RegisterResource(settings, reg.Settings)
}
