package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsHandler(t *testing.T) {
	app := fiber.New()
	NewDocsHandler().RegisterRoutes(app)

	t.Run("serves the OpenAPI document", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/x-yaml", resp.Header.Get("Content-Type"))
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "/api/predict-heart-rate")
	})

	t.Run("serves the OpenAPI document as JSON", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var doc map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
		assert.Equal(t, "3.0.3", doc["openapi"])
		paths, ok := doc["paths"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, paths, "/api/predict-heart-rate")
		assert.Contains(t, paths, "/api/health")
	})

	for _, path := range []string{"/docs", "/redoc"} {
		t.Run("serves "+path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), "/openapi.yaml")
		})
	}
}

func TestMetricsHandler(t *testing.T) {
	app := fiber.New()
	NewMetricsHandler().RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "go_goroutines")
}
