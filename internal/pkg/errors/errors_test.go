package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NotFound("Route")

		assert.Equal(t, "NOT_FOUND: Route not found", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		err := InvalidFormat("age").WithError(errors.New("not a number"))

		assert.Equal(t, "INVALID_FORMAT: Invalid data format (not a number)", err.Error())
		assert.EqualError(t, errors.Unwrap(err), "not a number")
	})
}

func TestMissingField(t *testing.T) {
	err := MissingField("bodySize")

	assert.Equal(t, CodeMissingField, err.Code)
	assert.Equal(t, "Missing required field: bodySize", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "bodySize", err.Field())
}

func TestInvalidFormat(t *testing.T) {
	t.Run("names the field", func(t *testing.T) {
		err := InvalidFormat("height")

		assert.Equal(t, "Invalid data format", err.Message)
		assert.Equal(t, "height", err.Field())
	})

	t.Run("malformed payload has no field", func(t *testing.T) {
		err := InvalidFormat("")

		assert.Empty(t, err.Field())
		assert.Nil(t, err.Details)
	})
}

func TestOutOfRange(t *testing.T) {
	tests := []struct {
		field    string
		min, max float64
		unit     string
		want     string
	}{
		{"height", 100, 250, "cm", "Height must be between 100 and 250 cm"},
		{"weight", 30, 200, "kg", "Weight must be between 30 and 200 kg"},
		{"age", 1, 120, "years", "Age must be between 1 and 120 years"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			err := OutOfRange(tt.field, tt.min, tt.max, tt.unit)

			assert.Equal(t, CodeOutOfRange, err.Code)
			assert.Equal(t, tt.want, err.Message)
			assert.Equal(t, tt.field, err.Field())
			assert.Equal(t, fmt.Sprintf("%g", tt.min), err.Details[DetailMin])
			assert.Equal(t, fmt.Sprintf("%g", tt.max), err.Details[DetailMax])
		})
	}
}

func TestInvalidEnum(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		allowed []string
		want    string
	}{
		{"two values", "gender", []string{"male", "female"}, "Gender must be either male or female"},
		{"three values", "bodySize", []string{"small", "medium", "large"}, "Body size must be small, medium, or large"},
		{"one value", "mode", []string{"on"}, "Mode must be on"},
		{"no values", "mode", nil, "Mode must be a known value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InvalidEnum(tt.field, tt.allowed...)

			assert.Equal(t, CodeInvalidEnum, err.Code)
			assert.Equal(t, tt.want, err.Message)
			assert.Equal(t, tt.field, err.Field())
		})
	}
}

func TestGetStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetStatusCode(MissingField("age")))
	assert.Equal(t, http.StatusNotFound, GetStatusCode(NotFound("route")))
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(Internal("boom")))
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(errors.New("plain")))
}

func TestGetAppError(t *testing.T) {
	t.Run("finds wrapped AppError", func(t *testing.T) {
		wrapped := fmt.Errorf("predict: %w", OutOfRange("age", 1, 120, "years"))

		appErr := GetAppError(wrapped)

		require.NotNil(t, appErr)
		assert.Equal(t, "age", appErr.Field())
		assert.True(t, IsOutOfRange(wrapped))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, GetAppError(errors.New("plain")))
	})
}

func TestIsInputError(t *testing.T) {
	assert.True(t, IsInputError(MissingField("height")))
	assert.True(t, IsInputError(InvalidFormat("")))
	assert.True(t, IsInputError(OutOfRange("age", 1, 120, "years")))
	assert.True(t, IsInputError(InvalidEnum("gender", "male", "female")))
	assert.False(t, IsInputError(NotFound("Route")))
	assert.False(t, IsInputError(Internal("boom")))
	assert.False(t, IsInputError(errors.New("plain")))
}

func TestCodePredicates(t *testing.T) {
	assert.True(t, IsMissingField(MissingField("age")))
	assert.False(t, IsMissingField(InvalidFormat("age")))
	assert.True(t, IsInvalidFormat(InvalidFormat("age")))
	assert.True(t, IsInvalidEnum(InvalidEnum("gender", "male", "female")))
	assert.False(t, IsInvalidEnum(nil))
}
