// filepath: internal/api/handlers/main.go
package handlers

import (
	"people/internal/services"
)

// Handlers holds the services the HTTP handlers depend on.
type Handlers struct {
	Info   services.InfoService
	Person services.PersonService
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(info services.InfoService, person services.PersonService) *Handlers {
	return &Handlers{
		Info:   info,
		Person: person,
	}
}
