package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mergington/activities-gobackend/internal/services"
)

// ActivityHandler handles HTTP requests for activities.
type ActivityHandler struct {
	service *services.ActivityService
}

func NewActivityHandler(service *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List handles GET /activities
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := services.ActivityFilter{
		Day:       q.Get("day"),
		StartTime: q.Get("start_time"),
		EndTime:   q.Get("end_time"),
	}

	activities, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// Days handles GET /activities/days
func (h *ActivityHandler) Days(w http.ResponseWriter, r *http.Request) {
	days, err := h.service.AvailableDays(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

// Signup handles POST /activities/{activityName}/signup
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	q := r.URL.Query()

	message, err := h.service.Signup(r.Context(), vars["activityName"], q.Get("email"), q.Get("teacher_username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

// Unregister handles POST /activities/{activityName}/unregister
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	q := r.URL.Query()

	message, err := h.service.Unregister(r.Context(), vars["activityName"], q.Get("email"), q.Get("teacher_username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}
