package lib

import (
	"github.com/google/uuid"
)

// NewID generates a random process identifier (UUID version 4, RFC 4122).
func NewID() string {
	return uuid.NewString()
}
