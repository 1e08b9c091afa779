// Package mocks provides hand-rolled testify mocks for the domain ports.
package mocks

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock type for the repository.UserRepository interface.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) UpdateCredentials(ctx context.Context, username, salt, passwordHash string) (*entity.User, error) {
	args := m.Called(ctx, username, salt, passwordHash)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) MostLiked(ctx context.Context) ([]entity.Ranking, error) {
	args := m.Called(ctx)
	rankings, _ := args.Get(0).([]entity.Ranking)

	return rankings, args.Error(1)
}

func (m *MockUserRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
