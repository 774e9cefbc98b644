package dto

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/heartmonitor/heartmonitor/api/internal/pkg/errors"
)

// DecodePayload parses the request body as a JSON object.
// A body that is empty, malformed, or not an object yields an InvalidFormat error.
func DecodePayload(c *fiber.Ctx) (map[string]any, error) {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil, apperrors.InvalidFormat("")
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.InvalidFormat("").WithError(err)
	}
	if payload == nil {
		return nil, apperrors.InvalidFormat("")
	}
	return payload, nil
}

// SendError writes err as an ErrorResponse with its mapped status code.
// Errors that are not client input errors are reported with a generic message.
func SendError(c *fiber.Ctx, err error) error {
	status := apperrors.GetStatusCode(err)
	message := "Internal server error"
	if appErr := apperrors.GetAppError(err); appErr != nil && status < fiber.StatusInternalServerError {
		message = appErr.Message
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}
