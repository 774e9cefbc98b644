// Package validator provides input validation for the heart rate monitor.
//
// This package wraps go-playground/validator to provide:
//   - ValidatePrediction, the ordered gate in front of the estimator
//   - Struct validation with human-readable messages
//
// # Prediction Validation
//
// ValidatePrediction accepts the decoded JSON body and returns either a
// normalized domain.PredictionInput or the first apperrors input error:
//
//	in, err := validator.ValidatePrediction(payload)
//	if err != nil {
//	    // err is an *apperrors.AppError with status 400
//	}
//
// # Struct Validation
//
// domain.PredictionInput carries validate tags mirroring the accepted ranges,
// so already typed values can be checked with validator.Validate().
//
// The validator instance is package-level and thread-safe.
package validator
