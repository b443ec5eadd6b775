package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"expensetracker/internal/shared/apperr"
)

// respondJSON writes v with the given status. Encoding failures are
// logged; headers are already gone at that point.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// respondError translates an error into the {"error": message} envelope.
// Unclassified errors are logged with their cause and surface as a
// generic 500 so internals never leak to clients.
func respondError(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		log.Printf("Internal error: %v", err)
	}
	respondJSON(w, apperr.HTTPStatus(err), map[string]string{"error": apperr.Message(err)})
}

// messageEnvelope is the {message, data} wrapper used by mutating endpoints.
type messageEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondMessage(w http.ResponseWriter, status int, message string, data any) {
	respondJSON(w, status, messageEnvelope{Message: message, Data: data})
}

// decodeJSON reads a request body into dst, rejecting malformed or empty
// bodies as bad requests.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.BadRequest("request body is required")
		}
		return apperr.BadRequest("invalid request body")
	}
	return nil
}
