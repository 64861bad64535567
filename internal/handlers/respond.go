package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mergington/activities-gobackend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a service error to its HTTP status and emits the
// {"detail": ...} body clients expect.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"detail": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrAuthRequired),
		errors.Is(err, services.ErrInvalidCredential),
		errors.Is(err, services.ErrAnnouncementAuth):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrActivityNotFound),
		errors.Is(err, services.ErrAnnouncementNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAlreadySignedUp),
		errors.Is(err, services.ErrNotRegistered),
		errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
