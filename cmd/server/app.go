package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/heartmonitor/heartmonitor/api/internal/middleware"
	apperrors "github.com/heartmonitor/heartmonitor/api/internal/pkg/errors"
)

// newApp creates the Fiber app with global middleware and all routes
func newApp(deps *Dependencies, sentryEnabled bool) *fiber.App {
	cfg := deps.Config
	logger := deps.Logger

	app := fiber.New(fiber.Config{
		AppName:               "Heart Rate Monitor API",
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: cfg.IsProduction(),
		EnablePrintRoutes:     cfg.IsDevelopment(),
		ErrorHandler:          errorHandler(logger, sentryEnabled),
	})

	app.Use(middleware.RequestID())

	loggerConfig := middleware.DefaultLoggerConfig(logger)
	loggerConfig.IncludeHeaders = cfg.Log.IncludeHeaders
	loggerMiddleware := middleware.NewLoggerMiddleware(loggerConfig)
	app.Use(loggerMiddleware.Handler())

	app.Use(middleware.RecoverWithSentry(logger, sentryEnabled))

	if sentryEnabled {
		app.Use(middleware.SentryMiddleware(true))
	}

	corsMiddleware := middleware.NewCORSMiddleware(middleware.CORSConfigForOrigins(cfg.CORS.AllowOrigins))
	app.Use(corsMiddleware.Handler())

	if cfg.Metrics.Enabled {
		metricsMiddleware := middleware.NewMetricsMiddleware(middleware.DefaultMetricsConfig())
		app.Use(metricsMiddleware.Handler())
	}

	registerRoutes(app, deps)

	return app
}

// errorHandler renders errors returned from handlers as {"error": message}
func errorHandler(logger *zap.Logger, sentryEnabled bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			if code == fiber.StatusNotFound {
				message = apperrors.NotFound("Route").Message
			}
		} else if appErr := apperrors.GetAppError(err); appErr != nil && appErr.StatusCode < fiber.StatusInternalServerError {
			code = appErr.StatusCode
			message = appErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("request error",
				zap.Int("status", code),
				zap.Error(err),
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.String("request_id", middleware.GetRequestID(c)),
			)
			if sentryEnabled {
				middleware.CaptureError(c, err)
			}
		}

		return c.Status(code).JSON(fiber.Map{
			"error": message,
		})
	}
}
