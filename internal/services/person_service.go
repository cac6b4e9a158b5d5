// filepath: internal/services/person_service.go
package services

import (
	"context"

	"people/internal/logging"
	"people/internal/models"
	"people/internal/repository"
	"people/internal/validation"
)

const defaultActor = "anonymous"

type actorKey struct{}

// WithActor tags ctx with the name recorded by the auditor for mutations made under it.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func actorFrom(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
		return actor
	}
	return defaultActor
}

var _ PersonService = (*personService)(nil)

// personService validates people and hands them to the storage port.
type personService struct {
	Repo    repository.PersonRepository
	Auditor Auditor
}

// NewPersonService creates a new PersonService.
func NewPersonService(repo repository.PersonRepository, auditor Auditor) *personService {
	return &personService{Repo: repo, Auditor: auditor}
}

// SavePerson validates person and stores it. The identifier is generated when absent.
func (s *personService) SavePerson(ctx context.Context, person *models.Person) (*models.Person, error) {
	if err := validation.ValidatePerson(person); err != nil {
		return nil, err
	}

	saved, err := s.Repo.Create(ctx, person.ID, person)
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("PersonService: saved person %s", saved.ID)
	s.audit(ctx, ActionCreate, saved.ID, map[string]interface{}{"name": saved.Name})
	return saved, nil
}

// GetAllPeople retrieves all people.
func (s *personService) GetAllPeople(ctx context.Context) ([]models.Person, error) {
	return s.Repo.FindAll(ctx)
}

// GetPersonByID retrieves a person by identifier.
func (s *personService) GetPersonByID(ctx context.Context, id string) (*models.Person, error) {
	if err := validation.ValidateIdentifier(id); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(ctx, id)
}

// UpdatePerson replaces every attribute of the stored person with the same identifier.
func (s *personService) UpdatePerson(ctx context.Context, person *models.Person) (*models.Person, error) {
	if err := validation.ValidatePerson(person); err != nil {
		return nil, err
	}
	if err := validation.ValidateIdentifier(person.ID); err != nil {
		return nil, err
	}

	matched, err := s.Repo.Update(ctx, person)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, personNotFound(person.ID)
	}

	logging.Log.Debugf("PersonService: updated person %s", person.ID)
	s.audit(ctx, ActionUpdate, person.ID, map[string]interface{}{"name": person.Name})
	return person, nil
}

// DeletePersonByID removes the person and returns its identifier.
func (s *personService) DeletePersonByID(ctx context.Context, id string) (string, error) {
	if err := validation.ValidateIdentifier(id); err != nil {
		return "", err
	}

	deleted, err := s.Repo.RemoveByID(ctx, id)
	if err != nil {
		return "", err
	}
	if deleted == 0 {
		return "", personNotFound(id)
	}

	logging.Log.Debugf("PersonService: deleted person %s", id)
	s.audit(ctx, ActionDelete, id, nil)
	return id, nil
}

func (s *personService) audit(ctx context.Context, action, id string, details map[string]interface{}) {
	if s.Auditor == nil {
		return
	}
	s.Auditor.Log(ctx, action, actorFrom(ctx), personResource(id), details)
}
