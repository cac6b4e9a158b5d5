// filepath: internal/services/mocks/person_mock.go
package mocks

import (
	"context"

	"people/internal/models"
	"people/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockPersonService is a mock implementation of services.PersonService
type MockPersonService struct {
	mock.Mock
}

// Compile-time check to ensure interface compliance
var _ services.PersonService = (*MockPersonService)(nil)

func (m *MockPersonService) SavePerson(ctx context.Context, person *models.Person) (*models.Person, error) {
	args := m.Called(ctx, person)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonService) GetAllPeople(ctx context.Context) ([]models.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Person), args.Error(1)
}

func (m *MockPersonService) GetPersonByID(ctx context.Context, id string) (*models.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonService) UpdatePerson(ctx context.Context, person *models.Person) (*models.Person, error) {
	args := m.Called(ctx, person)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonService) DeletePersonByID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
