package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/store"
)

// MockAddressStore implements store.AddressStore for testing.
type MockAddressStore struct {
	mu sync.Mutex

	// Custom behavior functions
	CreateFn       func(ctx context.Context, address *domain.Address) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Address, error)
	FindCurrentFn  func(ctx context.Context, ownerID uuid.UUID) (*domain.Address, error)
	ClearCurrentFn func(ctx context.Context, id uuid.UUID) error
	ListFn         func(ctx context.Context, query store.ListQuery) ([]*domain.Address, int64, error)
	UpdateFn       func(ctx context.Context, address *domain.Address) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error

	// Default responses
	Address   *domain.Address
	Addresses []*domain.Address
	Total     int64
	Err       error

	// Call tracking
	CreateCalls       int
	FindCurrentCalls  int
	ClearCurrentCalls int
	ListCalls         int
	UpdateCalls       int
	DeleteCalls       int

	// Last arguments seen
	LastCreated   *domain.Address
	LastClearedID uuid.UUID
	LastListQuery store.ListQuery
	LastDeleteID  uuid.UUID
	LastUpdated   *domain.Address
}

var _ store.AddressStore = (*MockAddressStore)(nil)

func (m *MockAddressStore) Create(ctx context.Context, address *domain.Address) error {
	m.mu.Lock()
	m.CreateCalls++
	m.LastCreated = address
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, address)
	}
	return m.Err
}

func (m *MockAddressStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Address, nil
}

func (m *MockAddressStore) FindCurrent(ctx context.Context, ownerID uuid.UUID) (*domain.Address, error) {
	m.mu.Lock()
	m.FindCurrentCalls++
	m.mu.Unlock()

	if m.FindCurrentFn != nil {
		return m.FindCurrentFn(ctx, ownerID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Address, nil
}

func (m *MockAddressStore) ClearCurrent(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.ClearCurrentCalls++
	m.LastClearedID = id
	m.mu.Unlock()

	if m.ClearCurrentFn != nil {
		return m.ClearCurrentFn(ctx, id)
	}
	return m.Err
}

func (m *MockAddressStore) List(ctx context.Context, query store.ListQuery) ([]*domain.Address, int64, error) {
	m.mu.Lock()
	m.ListCalls++
	m.LastListQuery = query
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx, query)
	}
	if m.Err != nil {
		return nil, 0, m.Err
	}
	return m.Addresses, m.Total, nil
}

func (m *MockAddressStore) Update(ctx context.Context, address *domain.Address) error {
	m.mu.Lock()
	m.UpdateCalls++
	m.LastUpdated = address
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, address)
	}
	return m.Err
}

func (m *MockAddressStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.LastDeleteID = id
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockAddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	return m
}
