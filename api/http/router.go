package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/joblens/api/http/handlers"
)

// Handlers groups everything Register needs.
type Handlers struct {
	Health   *handlers.HealthHandler
	Keywords *handlers.KeywordsHandler
	Uploads  *handlers.UploadsHandler
	Search   *handlers.SearchHandler
	Admin    *handlers.AdminHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	v1.Post("/keywords", h.Keywords.Extract)

	up := v1.Group("/uploads")
	up.Post("/", h.Uploads.Create)
	up.Get("/", h.Uploads.List)
	up.Get("/:id", h.Uploads.Get)
	up.Delete("/:id", h.Uploads.Delete)

	v1.Post("/search", h.Search.Run)
	v1.Get("/searches", h.Search.History)

	v1.Get("/admin/stats", h.Admin.Stats)

	// Passthrough JSON search kept at its historical path
	api.Post("/search", h.Search.Raw)
}
