package main

import (
	"go.uber.org/zap"

	"github.com/heartmonitor/heartmonitor/api/internal/config"
	"github.com/heartmonitor/heartmonitor/api/internal/handler"
	"github.com/heartmonitor/heartmonitor/api/internal/service"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// Services
	Estimator         *service.Estimator
	PredictionService *service.PredictionService

	// Handlers
	Handlers *Handlers
}

// Handlers holds all handler instances
type Handlers struct {
	Health     *handler.HealthHandler
	Index      *handler.IndexHandler
	Prediction *handler.PredictionHandler
	Docs       *handler.DocsHandler
	Metrics    *handler.MetricsHandler
}

// initDependencies wires services and handlers. A nil sampler uses the
// configured uniform perturbation.
func initDependencies(cfg *config.Config, logger *zap.Logger, sampler service.Sampler) *Dependencies {
	if sampler == nil {
		sampler = service.NewUniformSampler(cfg.Estimator.Perturbation)
	}

	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	deps.Estimator = service.NewEstimator(sampler)
	deps.PredictionService = service.NewPredictionService(deps.Estimator, logger)

	deps.Handlers = &Handlers{
		Health:     handler.NewHealthHandler(appVersion),
		Index:      handler.NewIndexHandler(),
		Prediction: handler.NewPredictionHandler(deps.PredictionService, logger),
		Docs:       handler.NewDocsHandler(),
		Metrics:    handler.NewMetricsHandler(),
	}

	return deps
}
