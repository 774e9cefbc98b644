package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader reads configuration from environment variables and an optional
// config.yaml file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader searching configPaths for config.yaml.
// With no paths it searches ".", "./config" and "/etc/heartmonitor".
func NewLoader(configPaths ...string) *Loader {
	v := viper.New()

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{".", "./config", "/etc/heartmonitor"}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	return &Loader{v: v}
}

// Load reads the config file if present and returns the validated config
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return l.decode()
}

// ConfigFileUsed returns the path of the loaded config file, or "" if none
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Watch calls onChange with the reloaded config each time the config file is
// written. Reloads that fail validation go to onError and the previous config
// stays in effect. Watch returns false when no config file was loaded.
func (l *Loader) Watch(onChange func(*Config), onError func(error)) bool {
	if l.v.ConfigFileUsed() == "" {
		return false
	}

	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := l.decode()
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		onChange(cfg)
	})
	l.v.WatchConfig()
	return true
}

func (l *Loader) decode() (*Config, error) {
	v := l.v
	var cfg Config

	// Server
	cfg.Server.Host = v.GetString("server_host")
	cfg.Server.Port = v.GetInt("server_port")
	cfg.Server.Env = v.GetString("server_env")

	// Logging
	cfg.Log.Level = v.GetString("log_level")
	cfg.Log.Format = v.GetString("log_format")
	cfg.Log.IncludeHeaders = v.GetBool("log_include_headers")

	// CORS
	cfg.CORS.AllowOrigins = splitList(v.GetStringSlice("cors_allow_origins"))

	// Metrics and docs
	cfg.Metrics.Enabled = v.GetBool("metrics_enabled")
	cfg.Docs.Enabled = v.GetBool("docs_enabled")

	// Estimator
	cfg.Estimator.Perturbation = v.GetFloat64("estimator_perturbation")

	// Sentry
	cfg.Sentry.Enabled = v.GetBool("sentry_enabled")
	cfg.Sentry.DSN = v.GetString("sentry_dsn")
	cfg.Sentry.Environment = v.GetString("sentry_environment")
	cfg.Sentry.Release = v.GetString("sentry_release")
	cfg.Sentry.Debug = v.GetBool("sentry_debug")
	cfg.Sentry.SampleRate = v.GetFloat64("sentry_sample_rate")
	cfg.Sentry.TracesSampleRate = v.GetFloat64("sentry_traces_sample_rate")

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", 5000)
	v.SetDefault("server_env", "development")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("log_include_headers", false)

	// CORS defaults
	v.SetDefault("cors_allow_origins", []string{"*"})

	// Metrics and docs defaults
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("docs_enabled", true)

	// Estimator defaults
	v.SetDefault("estimator_perturbation", 5.0)

	// Sentry defaults
	v.SetDefault("sentry_enabled", false)
	v.SetDefault("sentry_sample_rate", 1.0)
	v.SetDefault("sentry_traces_sample_rate", 0.1)
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Estimator.Perturbation < 0 {
		return fmt.Errorf("estimator perturbation must not be negative, got %g", cfg.Estimator.Perturbation)
	}
	return nil
}

// splitList flattens comma separated entries, as sent through env vars
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
