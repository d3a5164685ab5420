package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/sagarvizla/indus-creator-portal/internal/handler"
	"github.com/sagarvizla/indus-creator-portal/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Binding      *handler.BindingHandler
	Catalog      *handler.CatalogHandler
	Submit       *handler.SubmitHandler
	Notification *handler.NotificationHandler
	Health       *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics stay outside the identity gate
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	bindLimiter := middleware.NewBindRateLimiter()
	catalogLimiter := middleware.NewCatalogRateLimiter()
	submitLimiter := middleware.NewSubmitRateLimiter()

	api := app.Group("/api", middleware.RequireIdentity())

	// Channel binding
	api.Get("/channel", h.Binding.Status)
	api.Post("/channel", h.Binding.Bind, bindLimiter.Handler())

	// Month catalog and selection state
	api.Get("/videos", h.Catalog.List, catalogLimiter.Handler())
	api.Post("/videos/:videoId/toggle", h.Catalog.Toggle)
	api.Put("/videos/:videoId/format", h.Catalog.SetFormat)

	// Submission pipeline
	api.Post("/submit", h.Submit.Submit, submitLimiter.Handler())

	// Notification slot
	api.Get("/notification", h.Notification.Get)
	api.Delete("/notification", h.Notification.Dismiss)
}
