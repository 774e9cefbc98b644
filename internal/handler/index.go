package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heartmonitor/heartmonitor/api/internal/dto"
)

// IndexHandler serves the root discovery document
type IndexHandler struct {
	endpoints map[string]string
}

// NewIndexHandler creates an index handler listing the public operations
func NewIndexHandler() *IndexHandler {
	return &IndexHandler{
		endpoints: map[string]string{
			"predict": "/api/predict-heart-rate (POST)",
			"health":  "/api/health (GET)",
		},
	}
}

// AddEndpoint lists an additional operation in the discovery document
func (h *IndexHandler) AddEndpoint(name, description string) {
	h.endpoints[name] = description
}

// Index handles GET /
func (h *IndexHandler) Index(c *fiber.Ctx) error {
	return c.JSON(dto.IndexResponse{
		Message:   "Heart Rate Monitor API",
		Endpoints: h.endpoints,
	})
}

// RegisterRoutes registers the root route
func (h *IndexHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Index)
}
