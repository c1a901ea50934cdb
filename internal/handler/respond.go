// Package handler maps HTTP requests onto the service layer and service
// errors onto status codes.
package handler

import (
	"encoding/json"
	"net/http"
)

// Error kinds surfaced in JSON error bodies, machine-readable alongside the
// human-readable message.
const (
	kindValidationFailed     = "validation_failed"
	kindAuthenticationFailed = "authentication_failed"
	kindPermissionDenied     = "permission_denied"
	kindNotFound             = "not_found"
	kindInternal             = "internal"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(kind, msg string) map[string]string {
	return map[string]string{"error": msg, "kind": kind}
}
