package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tmkit/tmkit/domain/tm"
	"github.com/tmkit/tmkit/infrastructure/persistence"
)

// errorResponse is the JSON error envelope every handler returns on failure.
type errorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps an error to an HTTP status and writes the JSON error
// envelope. Language errors are the caller's fault (400); storage
// initialization failures and everything else are server errors.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, tm.ErrLanguage):
		status = http.StatusBadRequest
	case errors.Is(err, persistence.ErrStorageInit):
		status = http.StatusServiceUnavailable
	}

	if logger != nil && status >= http.StatusInternalServerError {
		logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	WriteJSON(w, status, errorResponse{Error: err.Error()})
}
