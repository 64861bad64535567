package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter wires all HTTP routes. Tests build it against in-memory stores.
func NewRouter(logger *zap.Logger, activities *ActivityHandler, announcements *AnnouncementHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogger(logger))

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET", "HEAD")

	api := router.PathPrefix("/activities").Subrouter()
	api.HandleFunc("", activities.List).Methods("GET")
	api.HandleFunc("/announcements", announcements.List).Methods("GET")
	api.HandleFunc("/announcements", announcements.Create).Methods("POST")
	api.HandleFunc("/announcements/{announcementID}", announcements.Update).Methods("PUT")
	api.HandleFunc("/announcements/{announcementID}", announcements.Delete).Methods("DELETE")
	api.HandleFunc("/days", activities.Days).Methods("GET")
	api.HandleFunc("/{activityName}/signup", activities.Signup).Methods("POST")
	api.HandleFunc("/{activityName}/unregister", activities.Unregister).Methods("POST")

	return router
}
