// Package shared centralizes JSON response writing so every handler produces
// the same envelopes and domain errors translate consistently.
package shared

import (
	"encoding/json"
	"net/http"

	dErrors "rfpforge/pkg/domain-errors"
)

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope. Only the
// caller-safe message is exposed; unexpected errors render generically.
func WriteError(w http.ResponseWriter, err error) {
	status := dErrors.ToHTTPStatus(dErrors.CodeOf(err))
	WriteJSON(w, status, map[string]string{"error": dErrors.Message(err)})
}
