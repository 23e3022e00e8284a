package domain

import "github.com/google/uuid"

// Owned is implemented by every entity that carries an owning user
// reference. The ownership guard operates on this interface so that one
// check serves all resources.
type Owned interface {
	// Owner returns the ID of the user the resource belongs to.
	Owner() uuid.UUID
}
