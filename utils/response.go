package utils

import (
	"encoding/json"
	"net/http"
)

type contextKey string

// RequestIDKey carries the request id injected by the middleware.
const RequestIDKey = contextKey("requestID")

// ErrorResponse is the failure body shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges deletes and other bodyless successes.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the standard {"error": msg} failure body.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg})
}
