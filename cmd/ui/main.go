package main

import (
	"log"

	"github.com/joho/godotenv"

	"mentormatch/adapters/backend"
	"mentormatch/internal/config"
	"mentormatch/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	client := backend.NewClient(cfg.Backend)
	app, err := ui.NewApp(ui.Config{Port: cfg.Server.Port}, client)
	if err != nil {
		log.Fatal("Failed to create UI app:", err)
	}

	log.Printf("Starting MentorMatch UI on http://localhost:%s (backend %s)", cfg.Server.Port, cfg.Backend.BaseURL)
	log.Fatal(app.Start(cfg.Server.Port))
}
