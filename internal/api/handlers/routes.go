// filepath: internal/api/handlers/routes.go
package handlers

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes attaches the public endpoints and the person resource to r.
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")

	r.HandleFunc("/person", h.CreatePerson).Methods("POST")
	r.HandleFunc("/person", h.GetPeople).Methods("GET")
	r.HandleFunc("/person", h.UpdatePerson).Methods("PUT")
	r.HandleFunc("/person/{id}", h.GetPerson).Methods("GET")
	r.HandleFunc("/person/{id}", h.DeletePerson).Methods("DELETE")
}
