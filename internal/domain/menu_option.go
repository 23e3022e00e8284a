package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMenuOptionID   = errors.New("menu option ID cannot be empty")
	ErrEmptyMenuOptionName = errors.New("menu option name cannot be empty")
	ErrNoMenuOptionOwner   = errors.New("menu option must have an owning user")
	ErrNoMenuOptionMenu    = errors.New("menu option must reference a menu")
	ErrInvalidMaxSelection = errors.New("menu option max selection must be at least 1")
)

// MenuOption represents a configurable option attached to a menu item,
// such as a topping group or size choice.
type MenuOption struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	MenuID            uuid.UUID `json:"menu_id"`
	Name              string    `json:"name"`
	MaxSelection      int       `json:"max_selection"`
	Required          bool      `json:"required"`
	MultipleSelection bool      `json:"multiple_selection"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewMenuOption creates a new MenuOption owned by the given user.
// The referenced menu must exist; that check happens at the store boundary.
func NewMenuOption(
	userID, menuID uuid.UUID,
	name string,
	maxSelection int,
	required, multipleSelection bool,
) (*MenuOption, error) {
	now := time.Now().UTC()
	option := &MenuOption{
		ID:                uuid.New(),
		UserID:            userID,
		MenuID:            menuID,
		Name:              name,
		MaxSelection:      maxSelection,
		Required:          required,
		MultipleSelection: multipleSelection,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := option.Validate(); err != nil {
		return nil, err
	}

	return option, nil
}

// Validate checks if the MenuOption has valid data.
func (o *MenuOption) Validate() error {
	if o.ID == uuid.Nil {
		return ErrEmptyMenuOptionID
	}
	if o.UserID == uuid.Nil {
		return ErrNoMenuOptionOwner
	}
	if o.MenuID == uuid.Nil {
		return ErrNoMenuOptionMenu
	}
	if o.Name == "" {
		return ErrEmptyMenuOptionName
	}
	if o.MaxSelection < 1 {
		return ErrInvalidMaxSelection
	}
	return nil
}

// Owner implements the Owned interface.
func (o *MenuOption) Owner() uuid.UUID {
	return o.UserID
}
