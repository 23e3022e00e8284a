// Package ownership implements the owner check applied by every mutating
// handler on an owned resource.
package ownership

import (
	"errors"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
)

// ErrNotOwned indicates the authenticated user does not own the resource.
// This is distinct from a not-found condition, which stores signal before
// the guard runs.
var ErrNotOwned = errors.New("resource not owned by user")

// Check verifies that the resource belongs to the given user. Handlers must
// call this after fetching the resource and before applying any mutation.
// Read endpoints deliberately skip this check.
func Check(resource domain.Owned, userID uuid.UUID) error {
	if resource.Owner() != userID {
		return ErrNotOwned
	}
	return nil
}
