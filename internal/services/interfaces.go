// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"people/internal/models"
)

// Auditor defines the interface for recording data-changing events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "person.create", "person.delete")
	// actor: who did it ("anonymous" for API calls, "seed" for the seed loader)
	// resource: what was affected (e.g., "Person:6f1c6a52-...")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// PersonService holds the only business rules of the application:
// validation before persistence and NotFound on unmatched update/delete.
type PersonService interface {
	SavePerson(ctx context.Context, person *models.Person) (*models.Person, error)
	GetAllPeople(ctx context.Context) ([]models.Person, error)
	// GetPersonByID returns (nil, nil) when no record has the identifier.
	GetPersonByID(ctx context.Context, id string) (*models.Person, error)
	UpdatePerson(ctx context.Context, person *models.Person) (*models.Person, error)
	DeletePersonByID(ctx context.Context, id string) (string, error)
}
