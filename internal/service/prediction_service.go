package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/heartmonitor/heartmonitor/api/internal/domain"
	apperrors "github.com/heartmonitor/heartmonitor/api/internal/pkg/errors"
	"github.com/heartmonitor/heartmonitor/api/internal/pkg/metrics"
	"github.com/heartmonitor/heartmonitor/api/internal/validator"
)

// PredictionService validates prediction payloads and runs the estimator
type PredictionService struct {
	estimator *Estimator
	logger    *zap.Logger
}

// NewPredictionService creates a new prediction service
func NewPredictionService(estimator *Estimator, logger *zap.Logger) *PredictionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PredictionService{
		estimator: estimator,
		logger:    logger,
	}
}

// Predict validates raw and returns a heart rate estimate.
// Input problems come back as *apperrors.AppError with a 400 status.
func (s *PredictionService) Predict(ctx context.Context, raw map[string]any) (*domain.PredictionResult, error) {
	start := time.Now()

	input, err := validator.ValidatePrediction(raw)
	if err != nil {
		s.recordRejection(err)
		return nil, err
	}

	result, err := s.PredictInput(ctx, *input)
	if err != nil {
		return nil, err
	}

	metrics.RecordPrediction(string(result.BMICategory), string(input.BodySize), result.HeartRate, time.Since(start))
	return result, nil
}

// PredictInput estimates from an already typed input after re-checking its ranges
func (s *PredictionService) PredictInput(ctx context.Context, input domain.PredictionInput) (*domain.PredictionResult, error) {
	if err := validator.Validate(input); err != nil {
		s.logger.Error("prediction input escaped validation",
			zap.Error(err),
			zap.Any("input", input),
		)
		return nil, apperrors.Internal("Internal server error").WithError(err)
	}

	result := s.estimator.Estimate(input)

	s.logger.Debug("heart rate predicted",
		zap.Float64("height", input.Height),
		zap.Float64("weight", input.Weight),
		zap.Int("age", input.Age),
		zap.String("gender", string(input.Gender)),
		zap.String("body_size", string(input.BodySize)),
		zap.Float64("bmi", result.BMI),
		zap.String("bmi_category", string(result.BMICategory)),
		zap.Int("heart_rate", result.HeartRate),
	)

	return &result, nil
}

// Explain validates raw and returns the full term breakdown of one estimate
func (s *PredictionService) Explain(ctx context.Context, raw map[string]any) (*domain.EstimateBreakdown, error) {
	input, err := validator.ValidatePrediction(raw)
	if err != nil {
		return nil, err
	}
	b := s.estimator.Breakdown(*input)
	return &b, nil
}

func (s *PredictionService) recordRejection(err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		return
	}
	metrics.RecordValidationFailure(appErr.Code, appErr.Field())
	s.logger.Debug("prediction rejected",
		zap.String("code", appErr.Code),
		zap.String("field", appErr.Field()),
		zap.String("message", appErr.Message),
	)
}
