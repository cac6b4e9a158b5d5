// filepath: internal/api/handlers/person_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"people/internal/logging"
	"people/internal/models"
	"people/internal/shared"

	"github.com/gorilla/mux"
)

const malformedBodyMessage = "Malformed request body"

// decodePerson reads an optional Person from the body. An empty body or a JSON null yields nil.
// The body must hold exactly one JSON value.
func decodePerson(r *http.Request) (*models.Person, error) {
	dec := json.NewDecoder(r.Body)

	var person *models.Person
	if err := dec.Decode(&person); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		logging.FromContext(r.Context()).Warnf("Failed to decode request body: %v", err)
		return nil, shared.NewKindError(shared.ErrMalformedInput, malformedBodyMessage)
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		logging.FromContext(r.Context()).Warn("Request body has data after the JSON value")
		return nil, shared.NewKindError(shared.ErrMalformedInput, malformedBodyMessage)
	}
	return person, nil
}

// @Summary Create a person
// @Description Validates and stores a person. The identifier is generated when omitted.
// @Tags person
// @Accept  json
// @Produce  json
// @Param   person  body  models.Person  true  "Person"
// @Success 201 {object} models.Person
// @Failure 400 {object} ErrorResponse "Validation failure or malformed body"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /person [post]
func (h *Handlers) CreatePerson(w http.ResponseWriter, r *http.Request) {
	person, err := decodePerson(r)
	if err != nil {
		respondWithFailure(w, r, err)
		return
	}

	saved, err := h.Person.SavePerson(r.Context(), person)
	if err != nil {
		respondWithFailure(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Infof("Person created: %s", saved.ID)
	respondWithJSON(w, http.StatusCreated, saved)
}

// @Summary List people
// @Description Retrieves every stored person.
// @Tags person
// @Produce  json
// @Success 200 {array} models.Person "Returns an empty array if nobody is stored"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /person [get]
func (h *Handlers) GetPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.Person.GetAllPeople(r.Context())
	if err != nil {
		respondWithFailure(w, r, err)
		return
	}

	// Ensure an empty array `[]` is returned instead of `null`
	if people == nil {
		people = []models.Person{}
	}

	respondWithJSON(w, http.StatusOK, people)
}

// @Summary Get a person
// @Description Retrieves a single person by identifier.
// @Tags person
// @Produce  json
// @Param   id  path  string  true  "Person identifier (UUID)"
// @Success 200 {object} models.Person
// @Failure 400 {object} ErrorResponse "Malformed identifier"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /person/{id} [get]
func (h *Handlers) GetPerson(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	person, err := h.Person.GetPersonByID(r.Context(), id)
	if err != nil {
		respondWithFailure(w, r, err)
		return
	}
	if person == nil {
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("Person with id: %s was not found", id))
		return
	}

	respondWithJSON(w, http.StatusOK, person)
}

// @Summary Update a person
// @Description Replaces every attribute of the person with the identifier given in the body.
// @Tags person
// @Accept  json
// @Produce  json
// @Param   person  body  models.Person  true  "Person, including its identifier"
// @Success 200 {object} models.Person
// @Failure 400 {object} ErrorResponse "Validation failure or malformed body"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /person [put]
func (h *Handlers) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	person, err := decodePerson(r)
	if err != nil {
		respondWithFailure(w, r, err)
		return
	}

	updated, err := h.Person.UpdatePerson(r.Context(), person)
	if err != nil {
		respondWithFailure(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Infof("Person updated: %s", updated.ID)
	respondWithJSON(w, http.StatusOK, updated)
}

// @Summary Delete a person
// @Description Removes a person and returns its identifier.
// @Tags person
// @Produce  json
// @Param   id  path  string  true  "Person identifier (UUID)"
// @Success 200 {string} string "Identifier of the deleted person"
// @Failure 400 {object} ErrorResponse "Malformed identifier"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /person/{id} [delete]
func (h *Handlers) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.Person.DeletePersonByID(r.Context(), id)
	if err != nil {
		respondWithFailure(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Infof("Person deleted: %s", deleted)
	respondWithJSON(w, http.StatusOK, deleted)
}
