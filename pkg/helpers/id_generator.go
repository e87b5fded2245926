package helpers

import (
	"github.com/google/uuid"
)

// GenerateUUID generates a UUID v4
func GenerateUUID() string {
	return uuid.New().String()
}

// RequestID returns incoming when it is a usable request id, otherwise a fresh UUID.
func RequestID(incoming string) string {
	if incoming != "" && len(incoming) <= 128 {
		return incoming
	}
	return GenerateUUID()
}
