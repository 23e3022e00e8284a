package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password.
	// Returns ErrUserExists if the username or email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List retrieves a page of users along with the total count matching
	// the query's filters.
	List(ctx context.Context, query ListQuery) ([]*domain.User, int64, error)

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction, allowing multiple operations within one transaction.
	WithTx(tx *sql.Tx) UserStore
}
