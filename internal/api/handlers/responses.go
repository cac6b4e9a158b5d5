// internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"people/internal/logging"
	"people/internal/shared"
)

// TimestampLayout formats ErrorResponse.Timestamp (dd-MM-yyyy HH:mm:ss).
const TimestampLayout = "02-01-2006 15:04:05"

const internalErrorMessage = "An unexpected error occurred"

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Status     int    `json:"status"`
	HTTPStatus string `json:"httpStatus"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

// now is replaced in tests.
var now = time.Now

// statusName turns 404 into "NOT_FOUND".
func statusName(code int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
}

// StatusFor maps a failure kind to its HTTP status. Unknown errors are 500.
func StatusFor(err error) int {
	switch {
	case shared.IsClientError(err):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{
		Status:     code,
		HTTPStatus: statusName(code),
		Message:    message,
		Timestamp:  now().Format(TimestampLayout),
	})
}

// respondWithFailure maps err to a status. Internal errors are logged, never echoed.
func respondWithFailure(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		logging.FromContext(r.Context()).Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
		respondWithError(w, code, internalErrorMessage)
		return
	}
	respondWithError(w, code, err.Error())
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"message":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
