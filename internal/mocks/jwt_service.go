package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	mu sync.Mutex

	// Custom behavior functions
	GenerateTokenFn        func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn        func(ctx context.Context, tokenString string) (*auth.Claims, error)
	GenerateRefreshTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default responses
	Token        string
	RefreshToken string
	Claims       *auth.Claims
	Err          error

	// Call tracking
	GenerateTokenCalls        int
	ValidateTokenCalls        int
	GenerateRefreshTokenCalls int
	ValidateRefreshTokenCalls int
}

var _ auth.JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	m.mu.Lock()
	m.GenerateTokenCalls++
	m.mu.Unlock()

	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	if m.Err != nil {
		return "", m.Err
	}
	if m.Token != "" {
		return m.Token, nil
	}
	return "test-access-token", nil
}

func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	m.mu.Lock()
	m.ValidateTokenCalls++
	m.mu.Unlock()

	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Claims, nil
}

func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	m.mu.Lock()
	m.GenerateRefreshTokenCalls++
	m.mu.Unlock()

	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, userID)
	}
	if m.Err != nil {
		return "", m.Err
	}
	if m.RefreshToken != "" {
		return m.RefreshToken, nil
	}
	return "test-refresh-token", nil
}

func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	m.mu.Lock()
	m.ValidateRefreshTokenCalls++
	m.mu.Unlock()

	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Claims, nil
}
