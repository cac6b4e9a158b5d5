package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"people/internal/models"
	"people/internal/shared"

	"github.com/google/uuid"
)

// PersonRepository is the storage port for the people collection.
//
// Update and RemoveByID report how many documents they touched (0 or 1) instead of
// failing on an unknown identifier, and FindByID returns (nil, nil) when nothing matches.
// Every method rejects identifiers that are not UUIDs with shared.ErrInvalidIdentifier.
type PersonRepository interface {
	Close() error

	// Create stores person under id. An empty id makes the repository generate one.
	Create(ctx context.Context, id string, person *models.Person) (*models.Person, error)
	FindAll(ctx context.Context) ([]models.Person, error)
	FindByID(ctx context.Context, id string) (*models.Person, error)
	// Update replaces every attribute of the document keyed by person.ID.
	Update(ctx context.Context, person *models.Person) (matched int64, err error)
	RemoveByID(ctx context.Context, id string) (deleted int64, err error)
}

// ParseIdentifier accepts only the canonical UUID form (lowercase, hyphenated), so a
// supplied identifier is stored and returned exactly as given. Anything else is an
// InvalidIdentifier failure.
func ParseIdentifier(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return "", shared.NewKindError(shared.ErrInvalidIdentifier, fmt.Sprintf("Invalid id: %s", id))
	}
	return id, nil
}

// ResolveIdentifier is used on create: it generates a new identifier when id is empty
// and validates it otherwise.
func ResolveIdentifier(id string) (string, error) {
	if id == "" {
		return uuid.NewString(), nil
	}
	return ParseIdentifier(id)
}

// MarshalDocument encodes a person as the JSON document kept by the stores.
func MarshalDocument(p *models.Person) ([]byte, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode person document: %w", err)
	}
	return doc, nil
}

// UnmarshalDocument decodes a stored JSON document.
func UnmarshalDocument(doc []byte) (*models.Person, error) {
	var p models.Person
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("failed to decode person document: %w", err)
	}
	return &p, nil
}
