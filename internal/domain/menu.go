package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMenuID       = errors.New("menu ID cannot be empty")
	ErrEmptyMenuName     = errors.New("menu name cannot be empty")
	ErrNoMenuOwner       = errors.New("menu must have an owning user")
	ErrNoMenuCategory    = errors.New("menu must reference a category")
	ErrNegativeMenuPrice = errors.New("menu price cannot be negative")
)

// Menu represents a purchasable menu item within a category.
type Menu struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewMenu creates a new Menu owned by the given user.
func NewMenu(userID, categoryID uuid.UUID, name, description string, price float64) (*Menu, error) {
	now := time.Now().UTC()
	menu := &Menu{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := menu.Validate(); err != nil {
		return nil, err
	}

	return menu, nil
}

// Validate checks if the Menu has valid data.
func (m *Menu) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMenuID
	}
	if m.UserID == uuid.Nil {
		return ErrNoMenuOwner
	}
	if m.CategoryID == uuid.Nil {
		return ErrNoMenuCategory
	}
	if m.Name == "" {
		return ErrEmptyMenuName
	}
	if m.Price < 0 {
		return ErrNegativeMenuPrice
	}
	return nil
}

// Owner implements the Owned interface.
func (m *Menu) Owner() uuid.UUID {
	return m.UserID
}
