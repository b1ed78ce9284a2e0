package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"staffdesk/service"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the domain error taxonomy onto HTTP statuses.
// Infrastructure errors are not echoed back; callers get the fallback
// message with a 500.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrDuplicateCheckIn),
		errors.Is(err, service.ErrNoActiveSession),
		errors.Is(err, service.ErrAlreadyCheckedOut):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAccessDenied):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
