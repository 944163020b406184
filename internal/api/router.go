// Package api exposes the playlist proxy over HTTP.
package api

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/anatolykoptev/go_playlists/internal/engine"
)

// Options configures the HTTP app.
type Options struct {
	AppName string
	// CORSOrigins is comma-separated; "*" or empty allows all.
	CORSOrigins string
	// Registry receives the HTTP collectors; nil uses a fresh registry.
	Registry *prometheus.Registry
}

// New builds the fiber app with the middleware stack and all routes,
// serving lookups from catalog.
func New(catalog engine.Catalog, opts Options) *fiber.App {
	if opts.AppName == "" {
		opts.AppName = "go_playlists"
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := newHTTPMetrics(reg)

	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		ServerHeader: opts.AppName,
	})

	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(NewRequestLogger())
	app.Use(NewCORS(opts.CORSOrigins))
	app.Use(m.middleware())

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", m.handler(reg))

	yt := NewYouTubeHandler(catalog)
	api := app.Group("/api")
	api.Get("/youtube", yt.Lookup)

	return app
}
