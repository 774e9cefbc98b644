package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heartmonitor/heartmonitor/api/internal/pkg/id"
)

// HeaderRequestID is the header carrying the request ID in both directions
const HeaderRequestID = "X-Request-ID"

const localsRequestID = "requestID"

// RequestIDConfig configures the request ID middleware
type RequestIDConfig struct {
	// Header is the header key for the request ID
	Header string
	// Generator generates a new request ID
	Generator func() string
}

// DefaultRequestIDConfig returns default request ID config
func DefaultRequestIDConfig() RequestIDConfig {
	return RequestIDConfig{
		Header:    HeaderRequestID,
		Generator: id.NewRequestID,
	}
}

// RequestID creates a request ID middleware.
// A well-formed incoming ID is echoed back; otherwise a new one is generated.
func RequestID(config ...RequestIDConfig) fiber.Handler {
	cfg := DefaultRequestIDConfig()
	if len(config) > 0 {
		if config[0].Header != "" {
			cfg.Header = config[0].Header
		}
		if config[0].Generator != nil {
			cfg.Generator = config[0].Generator
		}
	}

	return func(c *fiber.Ctx) error {
		requestID := c.Get(cfg.Header)
		if !id.ValidateRequestID(requestID) {
			requestID = cfg.Generator()
		}

		c.Set(cfg.Header, requestID)
		c.Locals(localsRequestID, requestID)

		return c.Next()
	}
}

// GetRequestID gets the request ID from context
func GetRequestID(c *fiber.Ctx) string {
	if requestID, ok := c.Locals(localsRequestID).(string); ok {
		return requestID
	}
	return ""
}
