package handler

import (
	"net/http"

	"toranovel-reader/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"toranovel-reader"}`))
	}).Methods("GET")

	// Initialize handlers
	chapterHandler := NewChapterHandler(container, container.Logger)
	highlightHandler := NewHighlightHandler(container, container.Logger)
	settingsHandler := NewSettingsHandler(container, container.Logger)
	voiceHandler := NewVoiceHandler(container, container.Logger)

	// Auth middleware for protected routes
	authMiddleware := AuthMiddleware(container)

	// Protected routes (require authentication)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware)

	// Reader routes (protected)
	protected.HandleFunc("/stories/{storyId}/chapters/{chapterId}/render", chapterHandler.RenderChapter).Methods("GET")

	// Highlight routes (protected)
	protected.HandleFunc("/highlights", highlightHandler.ListHighlights).Methods("GET")
	protected.HandleFunc("/highlights", highlightHandler.CreateHighlight).Methods("POST")
	protected.HandleFunc("/highlights/{id}", highlightHandler.UpdateHighlight).Methods("PUT")
	protected.HandleFunc("/highlights/{id}", highlightHandler.DeleteHighlight).Methods("DELETE")

	// Settings routes (protected)
	protected.HandleFunc("/settings", settingsHandler.GetSettings).Methods("GET")
	protected.HandleFunc("/settings", settingsHandler.UpdateSettings).Methods("PUT")

	// Voice routes (protected)
	protected.HandleFunc("/chapters/{chapterId}/voice", voiceHandler.RequestVoice).Methods("POST")
	protected.HandleFunc("/voice/jobs/{id}", voiceHandler.GetVoiceJob).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000", // Next.js dev server
			"https://toranovel.app",
			"https://www.toranovel.app",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		ExposedHeaders: []string{
			"Link",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
