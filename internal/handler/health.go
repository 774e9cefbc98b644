package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/heartmonitor/heartmonitor/api/internal/dto"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	version   string
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version:   version,
		startTime: time.Now(),
	}
}

// HealthStatus is the extended probe body served on /healthz
type HealthStatus struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// APIHealth handles GET /api/health
func (h *HealthHandler) APIHealth(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:  "healthy",
		Message: "Heart Rate Monitor API is running",
		Version: h.version,
	})
}

// Health handles GET /healthz
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthStatus{
		Status:    "healthy",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Liveness handles GET /livez - basic liveness probe
func (h *HealthHandler) Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// Version handles GET /version
func (h *HealthHandler) Version(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": h.version,
		"uptime":  time.Since(h.startTime).String(),
	})
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", h.APIHealth)
	app.Get("/healthz", h.Health)
	app.Get("/livez", h.Liveness)
	app.Get("/version", h.Version)
}
