package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes Prometheus metrics
type MetricsHandler struct {
	handler fiber.Handler
}

// NewMetricsHandler creates a handler serving the default Prometheus registry
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{
		handler: adaptor.HTTPHandler(promhttp.Handler()),
	}
}

// Metrics handles GET /metrics
func (h *MetricsHandler) Metrics(c *fiber.Ctx) error {
	return h.handler(c)
}

// RegisterRoutes registers the metrics route
func (h *MetricsHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/metrics", h.Metrics)
}
