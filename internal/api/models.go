package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username  string `json:"username"   validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserResponse is the public projection of a user, without credentials.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse defines the successful response for authentication
// endpoints: the user record plus a freshly issued token pair.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// TokenPairResponse defines the successful response for the token refresh
// endpoint.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// CreateTodoRequest defines the payload for creating a todo.
type CreateTodoRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Completed   bool   `json:"completed"`
}

// TodoPatch defines the whitelisted fields an update may touch. Only
// fields present in the request body are applied.
type TodoPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// IsEmpty reports whether the patch carries no whitelisted field.
func (p *TodoPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Completed == nil
}

// CreateAddressRequest defines the payload for creating an address.
type CreateAddressRequest struct {
	Street  string `json:"street"  validate:"required"`
	City    string `json:"city"    validate:"required"`
	State   string `json:"state"   validate:"required"`
	Zip     string `json:"zip"     validate:"required"`
	Country string `json:"country" validate:"required"`
}

// AddressPatch defines the whitelisted fields an address update may touch.
// The current flag is deliberately absent: it is managed by the create
// path's demote-then-insert sequence only.
type AddressPatch struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
	Country *string `json:"country"`
}

// IsEmpty reports whether the patch carries no whitelisted field.
func (p *AddressPatch) IsEmpty() bool {
	return p.Street == nil && p.City == nil && p.State == nil &&
		p.Zip == nil && p.Country == nil
}

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CategoryPatch defines the whitelisted fields a category update may touch.
type CategoryPatch struct {
	Name *string `json:"name"`
}

// IsEmpty reports whether the patch carries no whitelisted field.
func (p *CategoryPatch) IsEmpty() bool {
	return p.Name == nil
}

// CreateMenuRequest defines the payload for creating a menu.
type CreateMenuRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"required,gte=0"`
	Description string  `json:"description" validate:"required"`
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
}

// MenuPatch defines the whitelisted fields a menu update may touch.
type MenuPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *string  `json:"category_id"`
}

// IsEmpty reports whether the patch carries no whitelisted field.
func (p *MenuPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.CategoryID == nil
}

// CreateMenuOptionRequest defines the payload for creating a menu option.
type CreateMenuOptionRequest struct {
	Name              string `json:"name"               validate:"required"`
	MaxSelection      int    `json:"max_selection"      validate:"required,gte=1"`
	Required          bool   `json:"required"`
	MenuID            string `json:"menu_id"            validate:"required,uuid"`
	MultipleSelection bool   `json:"multiple_selection"`
}
