package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/heartmonitor/heartmonitor/api/internal/dto"
	"github.com/heartmonitor/heartmonitor/api/internal/middleware"
	apperrors "github.com/heartmonitor/heartmonitor/api/internal/pkg/errors"
	"github.com/heartmonitor/heartmonitor/api/internal/service"
)

// PredictionHandler handles heart rate prediction endpoints
type PredictionHandler struct {
	predictionService *service.PredictionService
	logger            *zap.Logger
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionService *service.PredictionService, logger *zap.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
		logger:            logger,
	}
}

// PredictHeartRate handles POST /api/predict-heart-rate
func (h *PredictionHandler) PredictHeartRate(c *fiber.Ctx) error {
	payload, err := dto.DecodePayload(c)
	if err != nil {
		return dto.SendError(c, err)
	}

	result, err := h.predictionService.Predict(c.Context(), payload)
	if err != nil {
		if !apperrors.IsInputError(err) {
			h.logger.Error("failed to predict heart rate",
				zap.Error(err),
				zap.String("request_id", middleware.GetRequestID(c)),
			)
		}
		return dto.SendError(c, err)
	}

	return c.JSON(dto.NewPredictHeartRateResponse(result))
}

// RegisterRoutes registers prediction routes
func (h *PredictionHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/predict-heart-rate", h.PredictHeartRate)
}
