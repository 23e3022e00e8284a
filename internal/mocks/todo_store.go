package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/store"
)

// MockTodoStore implements store.TodoStore for testing.
type MockTodoStore struct {
	mu sync.Mutex

	// Custom behavior functions
	CreateFn  func(ctx context.Context, todo *domain.Todo) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Todo, error)
	ListFn    func(ctx context.Context, query store.ListQuery) ([]*domain.Todo, int64, error)
	UpdateFn  func(ctx context.Context, todo *domain.Todo) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Default responses
	Todo  *domain.Todo
	Todos []*domain.Todo
	Total int64
	Err   error

	// Call tracking
	CreateCalls int
	ListCalls   int
	UpdateCalls int
	DeleteCalls int

	// Last arguments seen
	LastCreated   *domain.Todo
	LastUpdated   *domain.Todo
	LastListQuery store.ListQuery
	LastDeleteID  uuid.UUID
}

var _ store.TodoStore = (*MockTodoStore)(nil)

func (m *MockTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	m.mu.Lock()
	m.CreateCalls++
	m.LastCreated = todo
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, todo)
	}
	return m.Err
}

func (m *MockTodoStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Todo, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Todo, nil
}

func (m *MockTodoStore) List(ctx context.Context, query store.ListQuery) ([]*domain.Todo, int64, error) {
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
	return m.Todos, m.Total, nil
}

func (m *MockTodoStore) Update(ctx context.Context, todo *domain.Todo) error {
	m.mu.Lock()
	m.UpdateCalls++
	m.LastUpdated = todo
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, todo)
	}
	return m.Err
}

func (m *MockTodoStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.LastDeleteID = id
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockTodoStore) WithTx(tx *sql.Tx) store.TodoStore {
	return m
}
