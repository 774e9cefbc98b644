// Package logger builds the service's zap logger.
//
// The level is held in a zap.AtomicLevel so SetLevel takes effect on loggers
// already handed out, including ones derived with With.
package logger
