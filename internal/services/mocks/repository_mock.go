// filepath: internal/services/mocks/repository_mock.go
package mocks

import (
	"context"

	"people/internal/models"
	"people/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockPersonRepository is a mock implementation of repository.PersonRepository
type MockPersonRepository struct {
	mock.Mock
}

var _ repository.PersonRepository = (*MockPersonRepository)(nil)

func (m *MockPersonRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockPersonRepository) Create(ctx context.Context, id string, person *models.Person) (*models.Person, error) {
	args := m.Called(ctx, id, person)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonRepository) FindAll(ctx context.Context) ([]models.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Person), args.Error(1)
}

func (m *MockPersonRepository) FindByID(ctx context.Context, id string) (*models.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonRepository) Update(ctx context.Context, person *models.Person) (int64, error) {
	args := m.Called(ctx, person)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPersonRepository) RemoveByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
