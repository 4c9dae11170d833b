package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateSessionID identifies one modification session; stale async results
// carrying an old session ID are discarded instead of applied.
func GenerateSessionID() string {
	return uuid.NewString()
}
