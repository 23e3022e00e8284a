package mocks

import (
	"github.com/savori/savory-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher and
// auth.PasswordVerifier for testing without the cost of real bcrypt.
type MockPasswordHasher struct {
	// Custom behavior functions
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	// Default responses
	Hashed     string
	HashErr    error
	CompareErr error

	// Call tracking
	HashCalls    int
	CompareCalls int
}

var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCalls++

	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	if m.Hashed != "" {
		return m.Hashed, nil
	}
	return "hashed:" + password, nil
}

func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCalls++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	return m.CompareErr
}
