package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/store"
)

// MockMenuStore implements store.MenuStore for testing.
type MockMenuStore struct {
	mu sync.Mutex

	// Custom behavior functions
	CreateFn  func(ctx context.Context, menu *domain.Menu) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Menu, error)
	ListFn    func(ctx context.Context, query store.ListQuery) ([]*domain.Menu, int64, error)
	UpdateFn  func(ctx context.Context, menu *domain.Menu) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Default responses
	Menu  *domain.Menu
	Menus []*domain.Menu
	Total int64
	Err   error

	// Call tracking
	CreateCalls  int
	GetByIDCalls int
	ListCalls    int
	UpdateCalls  int
	DeleteCalls  int

	// Last arguments seen
	LastCreated   *domain.Menu
	LastUpdated   *domain.Menu
	LastListQuery store.ListQuery
}

var _ store.MenuStore = (*MockMenuStore)(nil)

func (m *MockMenuStore) Create(ctx context.Context, menu *domain.Menu) error {
	m.mu.Lock()
	m.CreateCalls++
	m.LastCreated = menu
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, menu)
	}
	return m.Err
}

func (m *MockMenuStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Menu, error) {
	m.mu.Lock()
	m.GetByIDCalls++
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Menu, nil
}

func (m *MockMenuStore) List(ctx context.Context, query store.ListQuery) ([]*domain.Menu, int64, error) {
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
	return m.Menus, m.Total, nil
}

func (m *MockMenuStore) Update(ctx context.Context, menu *domain.Menu) error {
	m.mu.Lock()
	m.UpdateCalls++
	m.LastUpdated = menu
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, menu)
	}
	return m.Err
}

func (m *MockMenuStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockMenuStore) WithTx(tx *sql.Tx) store.MenuStore {
	return m
}

// MockMenuOptionStore implements store.MenuOptionStore for testing.
type MockMenuOptionStore struct {
	mu sync.Mutex

	// Custom behavior functions
	CreateFn func(ctx context.Context, option *domain.MenuOption) error

	// Default responses
	Err error

	// Call tracking
	CreateCalls int

	// Last arguments seen
	LastCreated *domain.MenuOption
}

var _ store.MenuOptionStore = (*MockMenuOptionStore)(nil)

func (m *MockMenuOptionStore) Create(ctx context.Context, option *domain.MenuOption) error {
	m.mu.Lock()
	m.CreateCalls++
	m.LastCreated = option
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, option)
	}
	return m.Err
}

func (m *MockMenuOptionStore) WithTx(tx *sql.Tx) store.MenuOptionStore {
	return m
}
