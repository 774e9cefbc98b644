// Package config loads service configuration with viper.
//
// Values come from, in order of precedence: environment variables
// (SERVER_PORT, LOG_LEVEL, ESTIMATOR_PERTURBATION, ...), an optional
// config.yaml using the same flat keys, and built-in defaults.
//
// Loader.Watch re-reads config.yaml on change; the server uses it to
// adjust the log level without a restart.
package config
