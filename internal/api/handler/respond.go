package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aigem2/aigem-backend/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, domain.ErrorResponse{Error: msg})
}

// mapError translates domain sentinel errors to HTTP status codes.
// All mapping lives here so individual handlers stay concise.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMethodNotAllowed):
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrRateLimited):
		respondError(w, http.StatusTooManyRequests, "Too many requests")
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// NotFound replies to requests for unknown routes.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	mapError(w, domain.ErrNotFound)
}

// MethodNotAllowed replies when a route exists but not for the request method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	mapError(w, domain.ErrMethodNotAllowed)
}

// TooManyRequests replies when the rate limiter refuses a request.
func TooManyRequests(w http.ResponseWriter, _ *http.Request) {
	mapError(w, domain.ErrRateLimited)
}
