package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter builds the HTTP router for the practice API.
func NewRouter(h *Handler) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	// System
	api.HandleFunc("/health", h.Health).Methods("GET")

	// Skills
	api.HandleFunc("/skills", h.ListSkills).Methods("GET")
	api.HandleFunc("/skills/{id}/progress", h.SkillProgress).Methods("GET")

	// Practice sessions
	api.HandleFunc("/practice/start", h.StartSession).Methods("POST")
	api.HandleFunc("/practice/{id}/problem", h.GetProblem).Methods("GET")
	api.HandleFunc("/practice/{id}/answer", h.SubmitAnswer).Methods("POST")
	api.HandleFunc("/practice/{id}/summary", h.GetSummary).Methods("GET")
	api.HandleFunc("/practice/{id}/abandon", h.AbandonSession).Methods("POST")

	// CORS for classroom dashboards served from another origin.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(r)
}
