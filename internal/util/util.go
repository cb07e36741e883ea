package util

import (
	"github.com/google/uuid"
)

// NewRequestID returns a random identifier for tracing a request through the logs
func NewRequestID() string {
	return uuid.New().String()
}
