package id

import (
	"github.com/google/uuid"
)

// MaxRequestIDLength bounds client supplied request IDs
const MaxRequestIDLength = 128

// NewRequestID generates a new request ID (UUID v4)
func NewRequestID() string {
	return uuid.New().String()
}

// ValidateRequestID reports whether a client supplied request ID is safe to
// echo back and log: 1 to MaxRequestIDLength characters from [A-Za-z0-9._-].
func ValidateRequestID(id string) bool {
	if len(id) == 0 || len(id) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
