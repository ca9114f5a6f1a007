package types

import "github.com/google/uuid"

// NewID returns an opaque random identifier for slots and backups.
// Collision probability is treated as negligible and is not checked.
func NewID() string {
	return uuid.NewString()
}
