package api

import (
	"net/http"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/auralog/auralog/internal/api/recovery"
)

// RouterDeps carries the constructed handlers and middleware for NewRouter.
type RouterDeps struct {
	Auth       *AuthHandler
	Profile    *ProfileHandler
	Journal    *JournalHandler
	Transcribe *TranscribeHandler
	Health     *HealthHandler

	// RequireAuth wraps the protected routes.
	RequireAuth func(http.Handler) http.Handler

	CORSOrigins []string
}

// NewRouter wires the HTTP surface: public auth/transcription routes,
// token-protected journal routes, and the health endpoint.
func NewRouter(d RouterDeps) http.Handler {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	// Public endpoints
	router.HandleFunc("/register", d.Auth.Register).Methods("POST")
	router.HandleFunc("/token", d.Auth.Token).Methods("POST")
	router.HandleFunc("/transcribe", d.Transcribe.Transcribe).Methods("POST")
	router.HandleFunc("/api/health", d.Health.CheckHealth).Methods("GET")

	// Protected endpoints
	protected := router.NewRoute().Subrouter()
	protected.Use(d.RequireAuth)
	protected.HandleFunc("/setup-profile", d.Profile.SetupProfile).Methods("POST")
	protected.HandleFunc("/summarize", d.Journal.Summarize).Methods("POST")
	protected.HandleFunc("/search", d.Journal.Search).Methods("POST")

	cors := gorilla.CORS(
		gorilla.AllowedOrigins(d.CORSOrigins),
		gorilla.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gorilla.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		gorilla.AllowCredentials(),
	)
	return cors(router)
}
