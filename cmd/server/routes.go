package main

import (
	"github.com/gofiber/fiber/v2"
)

// registerRoutes registers all HTTP routes
func registerRoutes(app *fiber.App, deps *Dependencies) {
	h := deps.Handlers
	cfg := deps.Config

	h.Index.RegisterRoutes(app)
	h.Health.RegisterRoutes(app)

	if cfg.Metrics.Enabled {
		h.Metrics.RegisterRoutes(app)
		h.Index.AddEndpoint("metrics", "/metrics (GET)")
	}

	if cfg.Docs.Enabled {
		h.Docs.RegisterRoutes(app)
		h.Index.AddEndpoint("docs", "/docs (GET)")
	}

	api := app.Group("/api")
	h.Prediction.RegisterRoutes(api)
}
