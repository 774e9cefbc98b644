package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecoverWithSentry(t *testing.T) {
	t.Run("renders a generic 500 for a panic", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		app := fiber.New()
		app.Use(RequestID())
		app.Use(RecoverWithSentry(zap.New(core), false))
		app.Get("/boom", func(c *fiber.Ctx) error {
			panic("estimator exploded")
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Internal server error", body["error"])

		entries := logs.FilterMessage("panic recovered").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "/boom", entries[0].ContextMap()["path"])
		assert.Equal(t, resp.Header.Get("X-Request-ID"), entries[0].ContextMap()["request_id"])
	})

	t.Run("recovers error values", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		app := fiber.New()
		app.Use(RecoverWithSentry(zap.New(core), false))
		app.Get("/boom", func(c *fiber.Ctx) error {
			panic(errors.New("typed failure"))
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "typed failure", logs.All()[0].ContextMap()["error"])
	})

	t.Run("passes through normal requests", func(t *testing.T) {
		app := fiber.New()
		app.Use(RecoverWithSentry(zap.NewNop(), false))
		app.Get("/ok", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestInitSentry(t *testing.T) {
	t.Run("empty DSN leaves Sentry disabled", func(t *testing.T) {
		assert.NoError(t, InitSentry(DefaultSentryConfig()))
	})

	t.Run("invalid DSN is reported", func(t *testing.T) {
		config := DefaultSentryConfig()
		config.DSN = "not a dsn"

		assert.Error(t, InitSentry(config))
	})
}

func TestSentryMiddleware(t *testing.T) {
	t.Run("stores a hub when enabled", func(t *testing.T) {
		app := fiber.New()
		app.Use(SentryMiddleware(true))

		var hasHub bool
		app.Get("/test", func(c *fiber.Ctx) error {
			hasHub = c.Locals(localsSentryHub) != nil
			return c.SendStatus(fiber.StatusOK)
		})

		_, err := app.Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)

		assert.True(t, hasHub)
	})

	t.Run("does nothing when disabled", func(t *testing.T) {
		app := fiber.New()
		app.Use(SentryMiddleware(false))

		var hasHub bool
		app.Get("/test", func(c *fiber.Ctx) error {
			hasHub = c.Locals(localsSentryHub) != nil
			return c.SendStatus(fiber.StatusOK)
		})

		_, err := app.Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)

		assert.False(t, hasHub)
	})
}
