package utils

import "github.com/google/uuid"

// GenerateNoteID returns a fresh opaque note identifier.
func GenerateNoteID() string {
	return uuid.New().String()
}
