package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes
const (
	CodeInternal      = "INTERNAL_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeMissingField  = "MISSING_FIELD"
	CodeInvalidFormat = "INVALID_FORMAT"
	CodeOutOfRange    = "OUT_OF_RANGE"
	CodeInvalidEnum   = "INVALID_ENUM"
)

// Detail keys
const (
	DetailField   = "field"
	DetailMin     = "min"
	DetailMax     = "max"
	DetailAllowed = "allowed"
)

// AppError represents an application error with context
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	StatusCode int               `json:"-"`
	Err        error             `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithError wraps an underlying error
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// Field returns the input field the error refers to, if any
func (e *AppError) Field() string {
	if e.Details == nil {
		return ""
	}
	return e.Details[DetailField]
}

// New creates a new AppError
func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Internal creates an internal server error
func Internal(message string) *AppError {
	return New(CodeInternal, message, http.StatusInternalServerError)
}

// NotFound creates a not found error
func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// MissingField creates an error for a required input field that was not sent
func MissingField(field string) *AppError {
	return New(CodeMissingField, "Missing required field: "+field, http.StatusBadRequest).
		WithDetail(DetailField, field)
}

// InvalidFormat creates an error for an input field that could not be coerced
// to its expected type. An empty field means the payload itself was malformed.
func InvalidFormat(field string) *AppError {
	e := New(CodeInvalidFormat, "Invalid data format", http.StatusBadRequest)
	if field != "" {
		e.WithDetail(DetailField, field)
	}
	return e
}

// OutOfRange creates an error for a numeric field outside its inclusive bounds
func OutOfRange(field string, min, max float64, unit string) *AppError {
	message := fmt.Sprintf("%s must be between %g and %g %s", displayName(field), min, max, unit)
	return New(CodeOutOfRange, message, http.StatusBadRequest).
		WithDetail(DetailField, field).
		WithDetail(DetailMin, fmt.Sprintf("%g", min)).
		WithDetail(DetailMax, fmt.Sprintf("%g", max))
}

// InvalidEnum creates an error for a field whose value is not one of allowed
func InvalidEnum(field string, allowed ...string) *AppError {
	message := fmt.Sprintf("%s must be %s", displayName(field), enumPhrase(allowed))
	return New(CodeInvalidEnum, message, http.StatusBadRequest).
		WithDetail(DetailField, field).
		WithDetail(DetailAllowed, strings.Join(allowed, ","))
}

// displayName turns a camelCase field name into a capitalized phrase
func displayName(field string) string {
	if field == "" {
		return field
	}
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteString(strings.ToUpper(string(r)))
		case r >= 'A' && r <= 'Z':
			b.WriteByte(' ')
			b.WriteString(strings.ToLower(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// enumPhrase renders allowed values as "either a or b" or "a, b, or c"
func enumPhrase(allowed []string) string {
	switch len(allowed) {
	case 0:
		return "a known value"
	case 1:
		return allowed[0]
	case 2:
		return "either " + allowed[0] + " or " + allowed[1]
	default:
		return strings.Join(allowed[:len(allowed)-1], ", ") + ", or " + allowed[len(allowed)-1]
	}
}

// GetAppError extracts AppError from error if present
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsInputError reports whether the error was caused by client input
func IsInputError(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case CodeMissingField, CodeInvalidFormat, CodeOutOfRange, CodeInvalidEnum:
		return true
	}
	return false
}

// IsMissingField checks if the error is a missing field error
func IsMissingField(err error) bool {
	return hasCode(err, CodeMissingField)
}

// IsInvalidFormat checks if the error is an invalid format error
func IsInvalidFormat(err error) bool {
	return hasCode(err, CodeInvalidFormat)
}

// IsOutOfRange checks if the error is an out of range error
func IsOutOfRange(err error) bool {
	return hasCode(err, CodeOutOfRange)
}

// IsInvalidEnum checks if the error is an invalid enum error
func IsInvalidEnum(err error) bool {
	return hasCode(err, CodeInvalidEnum)
}

func hasCode(err error, code string) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == code
	}
	return false
}
