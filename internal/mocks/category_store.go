package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing.
type MockCategoryStore struct {
	mu sync.Mutex

	// Custom behavior functions
	CreateFn  func(ctx context.Context, category *domain.Category) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ListFn    func(ctx context.Context, query store.ListQuery) ([]*domain.Category, int64, error)
	UpdateFn  func(ctx context.Context, category *domain.Category) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Default responses
	Category   *domain.Category
	Categories []*domain.Category
	Total      int64
	Err        error

	// Call tracking
	CreateCalls int
	ListCalls   int
	UpdateCalls int
	DeleteCalls int

	// Last arguments seen
	LastCreated   *domain.Category
	LastUpdated   *domain.Category
	LastListQuery store.ListQuery
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	m.mu.Lock()
	m.CreateCalls++
	m.LastCreated = category
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}
	return m.Err
}

func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Category, nil
}

func (m *MockCategoryStore) List(ctx context.Context, query store.ListQuery) ([]*domain.Category, int64, error) {
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
	return m.Categories, m.Total, nil
}

func (m *MockCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	m.mu.Lock()
	m.UpdateCalls++
	m.LastUpdated = category
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, category)
	}
	return m.Err
}

func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return m
}
