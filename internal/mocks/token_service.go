package mocks

import (
	"pulse/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock type for the service.TokenService interface.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(userID, username string) (string, error) {
	args := m.Called(userID, username)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}
