package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/wanderlane/trip-planner-api/internal/config"
	"github.com/wanderlane/trip-planner-api/internal/database"
	"github.com/wanderlane/trip-planner-api/internal/handlers"
	"github.com/wanderlane/trip-planner-api/internal/notifier"
	"github.com/wanderlane/trip-planner-api/internal/planner"
	"github.com/wanderlane/trip-planner-api/internal/store"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Notifier
	var tripNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" && cfg.DiscordNotificationsChannelID != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			tripNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	// Initialize Handlers
	tripStore := store.NewTripStore(db)
	generator := &planner.MockGenerator{Delay: cfg.GenerateDelay}
	tripHandler := handlers.NewTripHandler(tripStore, generator, tripNotifier, cfg.FrontendURL)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, tripHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
