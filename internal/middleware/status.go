package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/heartmonitor/heartmonitor/api/internal/pkg/errors"
)

// responseStatus returns the status the client will see once the app error
// handler has rendered err.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return apperrors.GetStatusCode(err)
}
