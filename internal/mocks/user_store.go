package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	mu sync.Mutex

	// Custom behavior functions
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	ListFn       func(ctx context.Context, query store.ListQuery) ([]*domain.User, int64, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	// Default responses
	User  *domain.User
	Users []*domain.User
	Total int64
	Err   error

	// Call tracking
	CreateCalls  int
	GetByIDCalls int
	ListCalls    int
	DeleteCalls  int

	// Last arguments seen
	LastListQuery store.ListQuery
	LastDeleteID  uuid.UUID
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	m.GetByIDCalls++
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.User, nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.User, nil
}

func (m *MockUserStore) List(ctx context.Context, query store.ListQuery) ([]*domain.User, int64, error) {
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
	return m.Users, m.Total, nil
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.LastDeleteID = id
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
