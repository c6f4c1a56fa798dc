// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aisanity/sandbox-api/internal/handler/dto"
)

// HelloMessage is the greeting returned by GET /.
const HelloMessage = "Hello from aisanity sandboxed Go API!"

// Handler serves the root and fallback endpoints.
type Handler struct {
	environment string
	now         func() time.Time
}

// New creates a new Handler reporting the given environment label.
func New(environment string) *Handler {
	return &Handler{
		environment: environment,
		now:         time.Now,
	}
}

// Hello returns a greeting with the current time.
// GET /
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	response := dto.HelloResponse{
		Message:     HelloMessage,
		Timestamp:   h.now().Format(time.RFC3339Nano),
		Environment: h.environment,
	}
	writeJSON(w, http.StatusOK, response)
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "resource not found")
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing useful can be done with an encode error.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes the {"error": message} body used by every error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message})
}
