package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mergington/activities-gobackend/internal/models"
	"github.com/mergington/activities-gobackend/internal/services"
)

// AnnouncementHandler handles HTTP requests for announcements.
type AnnouncementHandler struct {
	service *services.AnnouncementService
}

func NewAnnouncementHandler(service *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// List handles GET /activities/announcements
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if announcements == nil {
		announcements = []models.Announcement{}
	}
	writeJSON(w, http.StatusOK, announcements)
}

// Create handles POST /activities/announcements
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.AnnouncementInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid request body"})
		return
	}

	created, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// Update handles PUT /activities/announcements/{announcementID}
func (h *AnnouncementHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in services.AnnouncementInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid request body"})
		return
	}

	// A malformed id cannot match any stored document. Passing the zero id
	// through keeps the auth-then-validation-then-404 ordering intact.
	id, _ := primitive.ObjectIDFromHex(mux.Vars(r)["announcementID"])

	updated, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /activities/announcements/{announcementID}
func (h *AnnouncementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid request body"})
		return
	}

	rawID := mux.Vars(r)["announcementID"]
	id, _ := primitive.ObjectIDFromHex(rawID)

	if err := h.service.Delete(r.Context(), id, body.Username); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"_id": rawID, "deleted": true})
}
