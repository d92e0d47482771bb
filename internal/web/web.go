// Package web provides shared HTTP response helpers for the JSON API.
package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// WriteError writes a JSON error body and logs it.
func WriteError(w http.ResponseWriter, status int, message string) {
	log.Printf("Error: %s (status %d)", message, status)
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteConfigError maps an engine error to a response: configuration
// problems become 422 with the offending field, anything else is a 500.
func WriteConfigError(w http.ResponseWriter, err error) {
	var cfgErr *models.ConfigurationError
	if errors.As(err, &cfgErr) {
		log.Printf("Rejected assumptions: %v", cfgErr)
		WriteJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": cfgErr.Error(),
			"field": cfgErr.Field,
		})
		return
	}
	WriteError(w, http.StatusInternalServerError, err.Error())
}

// DecodeJSON decodes a request body into dst, rejecting unknown fields so
// mistyped assumption names fail loudly instead of silently defaulting.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
