// Package errors provides application error types for the heart rate monitor.
//
// This package defines:
//   - AppError type with error classification
//   - Constructors for the prediction input failures
//   - Error type checking helpers
//   - HTTP status code mapping
//
// # Input Errors
//
//   - MissingField: a required field was not sent (400)
//   - InvalidFormat: a field could not be coerced to its type (400)
//   - OutOfRange: a numeric field is outside its inclusive bounds (400)
//   - InvalidEnum: a string field is not one of the accepted values (400)
//
// Unknown routes surface as NotFound (404) and anything else as
// Internal (500).
//
// # Usage
//
//	return apperrors.OutOfRange("height", 100, 250, "cm")
//
//	if apperrors.IsInputError(err) {
//	    // 400
//	}
package errors
