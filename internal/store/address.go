package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
)

// AddressStore defines the interface for address data persistence.
type AddressStore interface {
	// Create saves a new address to the store.
	Create(ctx context.Context, address *domain.Address) error

	// GetByID retrieves an address by its unique ID.
	// Returns ErrAddressNotFound if the address does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Address, error)

	// FindCurrent retrieves the owner's address with the current flag set.
	// Returns ErrAddressNotFound if the owner has no current address.
	FindCurrent(ctx context.Context, ownerID uuid.UUID) (*domain.Address, error)

	// ClearCurrent unsets the current flag on the given address.
	// Returns ErrAddressNotFound if the address does not exist.
	ClearCurrent(ctx context.Context, id uuid.UUID) error

	// List retrieves a page of addresses along with the total count
	// matching the query's filters.
	List(ctx context.Context, query ListQuery) ([]*domain.Address, int64, error)

	// Update persists the full state of an existing address.
	// Returns ErrAddressNotFound if the address does not exist.
	Update(ctx context.Context, address *domain.Address) error

	// Delete removes an address from the store by its ID.
	// Returns ErrAddressNotFound if the address does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new AddressStore instance that uses the provided
	// transaction. The create path runs demote-then-insert inside one
	// transaction to keep the single-current invariant.
	WithTx(tx *sql.Tx) AddressStore
}
