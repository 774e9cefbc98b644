package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newLoggedApp(config LoggerConfig) *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	app.Use(NewLoggerMiddleware(config).Handler())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid data format"})
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusInternalServerError)
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		path  string
		level zapcore.Level
		code  int64
	}{
		{"/ok", zapcore.InfoLevel, 200},
		{"/bad", zapcore.WarnLevel, 400},
		{"/fail", zapcore.ErrorLevel, 500},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			app := newLoggedApp(DefaultLoggerConfig(zap.New(core)))

			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, "request completed", entry.Message)
			fields := entry.ContextMap()
			assert.Equal(t, tt.path, fields["path"])
			assert.Equal(t, tt.code, fields["status"])
			assert.Equal(t, resp.Header.Get("X-Request-ID"), fields["request_id"])
		})
	}

	t.Run("reports status of returned errors", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		app := newLoggedApp(DefaultLoggerConfig(zap.New(core)))

		_, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
		require.NoError(t, err)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.WarnLevel, entry.Level)
		assert.Equal(t, int64(404), entry.ContextMap()["status"])
	})

	t.Run("skips health probes", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		app := newLoggedApp(DefaultLoggerConfig(zap.New(core)))

		_, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
		require.NoError(t, err)

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("includes headers without credentials", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		config := DefaultLoggerConfig(zap.New(core))
		config.IncludeHeaders = true
		app := newLoggedApp(config)

		req := httptest.NewRequest("GET", "/ok", nil)
		req.Header.Set("Authorization", "Bearer secret")
		req.Header.Set("X-Client", "hrctl")
		_, err := app.Test(req)
		require.NoError(t, err)

		require.Equal(t, 1, logs.Len())
		headers, ok := logs.All()[0].ContextMap()["headers"].(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "hrctl", headers["X-Client"])
		assert.NotContains(t, headers, "Authorization")
	})
}
