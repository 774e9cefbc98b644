// Package domain contains the core types for the heart rate monitor.
//
// This package defines:
//   - PredictionInput, the validated body measurements
//   - PredictionResult and EstimateBreakdown, the estimator outputs
//   - Gender, BodySize and BMICategory enums
//   - The accepted measurement ranges and the heart rate clamp bounds
//
// Domain types are transport-agnostic and live only for the duration of a
// single request.
package domain
