package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token embedding the user's ID.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken validates the provided access token string and extracts
	// the claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed JWT refresh token embedding the
	// user's ID. Refresh tokens have a longer lifetime and are signed with
	// a separate secret.
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateRefreshToken validates the provided refresh token string and
	// extracts the claims. Returns ErrExpiredRefreshToken,
	// ErrInvalidRefreshToken or ErrWrongTokenType on failure.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated claims carried by a token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID

	// TokenType indicates the purpose of the token ("access" or "refresh").
	TokenType string

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
