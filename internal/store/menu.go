package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
)

// MenuStore defines the interface for menu data persistence.
type MenuStore interface {
	// Create saves a new menu to the store.
	// Returns ErrInvalidEntity if the referenced category does not exist.
	Create(ctx context.Context, menu *domain.Menu) error

	// GetByID retrieves a menu by its unique ID.
	// Returns ErrMenuNotFound if the menu does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Menu, error)

	// List retrieves a page of menus along with the total count matching
	// the query's filters.
	List(ctx context.Context, query ListQuery) ([]*domain.Menu, int64, error)

	// Update persists the full state of an existing menu.
	// Returns ErrMenuNotFound if the menu does not exist.
	Update(ctx context.Context, menu *domain.Menu) error

	// Delete removes a menu from the store by its ID.
	// Returns ErrMenuNotFound if the menu does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new MenuStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) MenuStore
}

// MenuOptionStore defines the interface for menu option data persistence.
type MenuOptionStore interface {
	// Create saves a new menu option to the store.
	// Returns ErrInvalidEntity if the referenced menu does not exist.
	Create(ctx context.Context, option *domain.MenuOption) error

	// WithTx returns a new MenuOptionStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) MenuOptionStore
}
