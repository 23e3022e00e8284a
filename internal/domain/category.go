package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCategoryID   = errors.New("category ID cannot be empty")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
	ErrNoCategoryOwner   = errors.New("category must have an owning user")
)

// Category represents a menu category created by a user.
type Category struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategory creates a new Category owned by the given user.
func NewCategory(userID uuid.UUID, name string) (*Category, error) {
	now := time.Now().UTC()
	category := &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCategoryID
	}
	if c.UserID == uuid.Nil {
		return ErrNoCategoryOwner
	}
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	return nil
}

// Owner implements the Owned interface.
func (c *Category) Owner() uuid.UUID {
	return c.UserID
}
