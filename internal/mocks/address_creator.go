package mocks

import (
	"context"
	"sync"

	"github.com/savori/savory-api/internal/domain"
)

// MockCurrentAddressCreator implements address.CurrentAddressCreator for
// testing handlers without a real database transaction.
type MockCurrentAddressCreator struct {
	mu sync.Mutex

	// Custom behavior function
	CreateCurrentFn func(ctx context.Context, addr *domain.Address) error

	// Default response
	Err error

	// Call tracking
	CreateCurrentCalls int
	LastCreated        *domain.Address
}

func (m *MockCurrentAddressCreator) CreateCurrent(ctx context.Context, addr *domain.Address) error {
	m.mu.Lock()
	m.CreateCurrentCalls++
	m.LastCreated = addr
	m.mu.Unlock()

	if m.CreateCurrentFn != nil {
		return m.CreateCurrentFn(ctx, addr)
	}
	return m.Err
}
