package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	appconfig "github.com/wanderlane/trip-planner-api/internal/config"
)

func RegisterRoutes(r *chi.Mux, cfg *appconfig.Config, tripHandler *TripHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.EnableCORS {
		r.Use(newCORSHandler(cfg.AllowedOrigins))
	}

	// Initialize Huma API
	config := huma.DefaultConfig("Trip Planner API", "1.0.0")
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Planning view
	huma.Get(api, "/trip/defaults", tripHandler.HandleDraftDefaults)
	huma.Get(api, "/trip/options", tripHandler.HandleTripOptions)
	huma.Post(api, "/trip", tripHandler.HandleSubmitTrip)

	// Results view
	huma.Get(api, "/itinerary", tripHandler.HandleItinerary)
	huma.Post(api, "/itinerary/export", tripHandler.HandleExport)
	huma.Post(api, "/itinerary/share", tripHandler.HandleShare)
}

func newCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
