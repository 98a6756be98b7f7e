// Package response carries the JSON error body used by middleware
// that rejects a request before it reaches a handler: the API-key
// guard on the snapshot-refresh endpoint and the UUID check on
// resource routes. Handlers shape their own responses; this package
// only covers the rejection path.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the rejection body. Error is a short category
// ("unauthorized", "invalid UUID format"); Details names the specific
// reason ("Missing API key", "Time token is invalid or expired") and
// is omitted when empty.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RespondError writes an ErrorResponse with the given status code.
// Pass an empty details string when the category alone is enough.
func RespondError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := ErrorResponse{Error: message, Details: details}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
