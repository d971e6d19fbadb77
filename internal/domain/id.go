package domain

import "github.com/google/uuid"

// generateID creates a new unique session identifier.
func generateID() string {
	return uuid.NewString()
}
