// filepath: internal/services/service_errors.go
package services

import (
	"fmt"

	"people/internal/shared"
)

// Audit actions recorded by the person service.
const (
	ActionCreate = "person.create"
	ActionUpdate = "person.update"
	ActionDelete = "person.delete"
)

func personNotFound(id string) error {
	return shared.NewKindError(shared.ErrNotFound, fmt.Sprintf("Person with id: %s was not found", id))
}

func personResource(id string) string {
	return "Person:" + id
}
