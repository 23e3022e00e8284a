package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common address validation errors
var (
	ErrEmptyAddressID    = errors.New("address ID cannot be empty")
	ErrNoAddressOwner    = errors.New("address must have an owning user")
	ErrIncompleteAddress = errors.New("address must have street, city, state, zip and country")
)

// Address represents a delivery address belonging to a user.
//
// Invariant: at most one address per user has Current set. Creating a new
// address demotes any prior current address before inserting the new one.
type Address struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Country   string    `json:"country"`
	Current   bool      `json:"current"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAddress creates a new Address for the given user. New addresses are
// always created as the user's current address.
func NewAddress(userID uuid.UUID, street, city, state, zip, country string) (*Address, error) {
	now := time.Now().UTC()
	address := &Address{
		ID:        uuid.New(),
		UserID:    userID,
		Street:    street,
		City:      city,
		State:     state,
		Zip:       zip,
		Country:   country,
		Current:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := address.Validate(); err != nil {
		return nil, err
	}

	return address, nil
}

// Validate checks if the Address has valid data.
func (a *Address) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAddressID
	}
	if a.UserID == uuid.Nil {
		return ErrNoAddressOwner
	}
	if a.Street == "" || a.City == "" || a.State == "" || a.Zip == "" || a.Country == "" {
		return ErrIncompleteAddress
	}
	return nil
}

// Owner implements the Owned interface.
func (a *Address) Owner() uuid.UUID {
	return a.UserID
}
