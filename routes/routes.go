package routes

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/Domotic593/Ruleta-Completa/controllers/ruleta"
	"github.com/Domotic593/Ruleta-Completa/middleware"
	"github.com/Domotic593/Ruleta-Completa/wheel"
)

func optionsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// InitRouter wires the public wheel endpoints and the admin surface onto a
// mux router. Controllers get the DB handle injected here; nothing below the
// router touches package globals.
func InitRouter(db *gorm.DB) *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint for container health checks
	r.Handle("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "ruleta-api",
		})
	})).Methods(http.MethodGet)

	// CORS - origins from CORS_ALLOWED_ORIGINS (comma-separated) or defaults
	// for the local React panel
	origins := []string{
		"http://localhost:3000", "http://localhost:5000",
		"http://127.0.0.1:3000", "http://127.0.0.1:5000",
	}
	if originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS"); originsEnv != "" {
		for _, p := range strings.Split(originsEnv, ",") {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
	}
	r.Use(func(next http.Handler) http.Handler {
		return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "X-Request-ID"}),
			handlers.AllowCredentials(),
		)(next)
	})

	api := r.PathPrefix("/api").Subrouter()

	// Catch-all OPTIONS handler for CORS preflight
	api.PathPrefix("/").HandlerFunc(optionsHandler).Methods(http.MethodOptions)

	// Spin limiter: 60 spins per IP per minute
	spinLimiter := middleware.NewIPRateLimiter(60, time.Minute)

	wheelController := ruleta.NewController(db, wheel.NewDefault())

	publicRouter := api.PathPrefix("/ruleta").Subrouter()
	publicRouter.Handle("/items", http.HandlerFunc(wheelController.ItemsHandler)).Methods(http.MethodGet)
	publicRouter.Handle("/girar", spinLimiter.Middleware(http.HandlerFunc(wheelController.GirarHandler))).Methods(http.MethodPost)

	SetAdminRoutes(api, db)

	return r
}
