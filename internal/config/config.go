package config

import "strconv"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Metrics   MetricsConfig
	Docs      DocsConfig
	Estimator EstimatorConfig
	Sentry    SentryConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
	// IncludeHeaders adds request headers, minus credentials, to access logs
	IncludeHeaders bool
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowOrigins []string
}

// MetricsConfig holds Prometheus configuration
type MetricsConfig struct {
	Enabled bool
}

// DocsConfig holds API documentation configuration
type DocsConfig struct {
	Enabled bool
}

// EstimatorConfig holds heart rate estimator configuration
type EstimatorConfig struct {
	// Perturbation is the half-width of the uniform noise added to each estimate
	Perturbation float64
}

// SentryConfig holds Sentry error reporting configuration
type SentryConfig struct {
	Enabled          bool
	DSN              string
	Environment      string
	Release          string
	Debug            bool
	SampleRate       float64
	TracesSampleRate float64
}

// IsDevelopment returns true if running in development mode
func (c Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c Config) IsProduction() bool {
	return c.Server.Env == "production"
}
