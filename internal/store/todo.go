package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
)

// TodoStore defines the interface for todo data persistence.
type TodoStore interface {
	// Create saves a new todo to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, todo *domain.Todo) error

	// GetByID retrieves a todo by its unique ID.
	// Returns ErrTodoNotFound if the todo does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Todo, error)

	// List retrieves a page of todos along with the total count matching
	// the query's filters.
	List(ctx context.Context, query ListQuery) ([]*domain.Todo, int64, error)

	// Update persists the full state of an existing todo.
	// Returns ErrTodoNotFound if the todo does not exist.
	Update(ctx context.Context, todo *domain.Todo) error

	// Delete removes a todo from the store by its ID.
	// Returns ErrTodoNotFound if the todo does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new TodoStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) TodoStore
}
