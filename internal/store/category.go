package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category to the store.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its unique ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// List retrieves a page of categories along with the total count
	// matching the query's filters.
	List(ctx context.Context, query ListQuery) ([]*domain.Category, int64, error)

	// Update persists the full state of an existing category.
	// Returns ErrCategoryNotFound if the category does not exist.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category from the store by its ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new CategoryStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) CategoryStore
}
