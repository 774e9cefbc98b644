package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Defaults(t *testing.T) {
	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Log.IncludeHeaders)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Docs.Enabled)
	assert.Equal(t, 5.0, cfg.Estimator.Perturbation)
	assert.False(t, cfg.Sentry.Enabled)
	assert.Equal(t, 1.0, cfg.Sentry.SampleRate)
}

func TestLoader_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("ESTIMATOR_PERTURBATION", "0")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_INCLUDE_HEADERS", "true")

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 0.0, cfg.Estimator.Perturbation)
	assert.False(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Log.IncludeHeaders)
}

func TestLoader_ConfigFile(t *testing.T) {
	t.Run("reads config.yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "server_port: 9000\nlog_format: console\ndocs_enabled: false\ncors_allow_origins:\n  - https://clinic.example.com\n")

		loader := NewLoader(dir)
		cfg, err := loader.Load()
		require.NoError(t, err)

		assert.Equal(t, 9000, cfg.Server.Port)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.False(t, cfg.Docs.Enabled)
		assert.Equal(t, []string{"https://clinic.example.com"}, cfg.CORS.AllowOrigins)
		assert.Equal(t, path, loader.ConfigFileUsed())
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "server_port: 9000\n")
		t.Setenv("SERVER_PORT", "7000")

		cfg, err := NewLoader(dir).Load()
		require.NoError(t, err)

		assert.Equal(t, 7000, cfg.Server.Port)
	})

	t.Run("rejects malformed file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "server_port: [unclosed\n")

		_, err := NewLoader(dir).Load()

		assert.Error(t, err)
	})
}

func TestLoader_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port zero", map[string]string{"SERVER_PORT": "0"}},
		{"port too large", map[string]string{"SERVER_PORT": "70000"}},
		{"negative perturbation", map[string]string{"ESTIMATOR_PERTURBATION": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewLoader(t.TempDir()).Load()

			assert.Error(t, err)
		})
	}
}

func TestLoader_Watch(t *testing.T) {
	t.Run("returns false without a config file", func(t *testing.T) {
		loader := NewLoader(t.TempDir())
		_, err := loader.Load()
		require.NoError(t, err)

		assert.False(t, loader.Watch(func(*Config) {}, nil))
	})

	t.Run("reloads on write", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "log_level: info\n")

		loader := NewLoader(dir)
		_, err := loader.Load()
		require.NoError(t, err)

		reloaded := make(chan *Config, 16)
		require.True(t, loader.Watch(func(cfg *Config) { reloaded <- cfg }, nil))

		writeConfig(t, dir, "log_level: debug\n")

		deadline := time.After(5 * time.Second)
		for {
			select {
			case cfg := <-reloaded:
				if cfg.Log.Level == "debug" {
					return
				}
			case <-deadline:
				t.Fatal("config change was not observed")
			}
		}
	})
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", " c ", ""}))
	assert.Nil(t, splitList(nil))
}
