package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock type for the service.PasswordHasher interface.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) RandomSalt() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Hash(password, salt string) string {
	args := m.Called(password, salt)

	return args.String(0)
}

func (m *MockPasswordHasher) Verify(password, salt, expectedHash string) bool {
	args := m.Called(password, salt, expectedHash)

	return args.Bool(0)
}
