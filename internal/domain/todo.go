package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common todo validation errors
var (
	ErrEmptyTodoID   = errors.New("todo ID cannot be empty")
	ErrEmptyTodoName = errors.New("todo name cannot be empty")
	ErrNoTodoOwner   = errors.New("todo must have an owning user")
)

// Todo represents a single task item belonging to a user.
type Todo struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTodo creates a new Todo owned by the given user.
func NewTodo(userID uuid.UUID, name, description string, completed bool) (*Todo, error) {
	now := time.Now().UTC()
	todo := &Todo{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Completed:   completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := todo.Validate(); err != nil {
		return nil, err
	}

	return todo, nil
}

// Validate checks if the Todo has valid data.
func (t *Todo) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTodoID
	}
	if t.UserID == uuid.Nil {
		return ErrNoTodoOwner
	}
	if t.Name == "" {
		return ErrEmptyTodoName
	}
	return nil
}

// Owner implements the Owned interface.
func (t *Todo) Owner() uuid.UUID {
	return t.UserID
}
