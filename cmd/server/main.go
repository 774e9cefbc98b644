package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/heartmonitor/heartmonitor/api/internal/config"
	"github.com/heartmonitor/heartmonitor/api/internal/middleware"
	"github.com/heartmonitor/heartmonitor/api/internal/pkg/logger"
)

const appVersion = "1.0.0"

func main() {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer logger.Sync()

	if loader.Watch(func(next *config.Config) {
		prev := logger.Level()
		lvl := logger.SetLevel(next.Log.Level)
		log.Info("config reloaded",
			zap.Stringer("previous_log_level", prev),
			zap.Stringer("log_level", lvl),
		)
	}, func(err error) {
		log.Warn("config reload rejected, keeping previous config", zap.Error(err))
	}) {
		log.Info("watching config file", zap.String("path", loader.ConfigFileUsed()))
	}

	sentryEnabled := cfg.Sentry.Enabled && cfg.Sentry.DSN != ""
	if sentryEnabled {
		sentryConfig := middleware.DefaultSentryConfig()
		sentryConfig.DSN = cfg.Sentry.DSN
		sentryConfig.Environment = cfg.Sentry.Environment
		sentryConfig.Release = cfg.Sentry.Release
		sentryConfig.Debug = cfg.Sentry.Debug
		sentryConfig.SampleRate = cfg.Sentry.SampleRate
		sentryConfig.TracesSampleRate = cfg.Sentry.TracesSampleRate
		if sentryConfig.Release == "" {
			sentryConfig.Release = "heartmonitor@" + appVersion
		}
		if sentryConfig.Environment == "" {
			sentryConfig.Environment = cfg.Server.Env
		}

		if err := middleware.InitSentry(sentryConfig); err != nil {
			log.Error("failed to initialize Sentry", zap.Error(err))
			sentryEnabled = false
		} else {
			log.Info("Sentry initialized",
				zap.String("environment", sentryConfig.Environment),
				zap.String("release", sentryConfig.Release),
			)
			defer middleware.FlushSentry(sentryConfig.FlushTimeout)
		}
	}

	deps := initDependencies(cfg, log, nil)
	app := newApp(deps, sentryEnabled)

	go func() {
		addr := cfg.Server.Addr()
		log.Info("starting server", zap.String("addr", addr), zap.String("env", cfg.Server.Env))
		if err := app.Listen(addr); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}

	log.Info("server stopped")
}
