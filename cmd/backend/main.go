package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"mentormatch/adapters/postgres"
	"mentormatch/internal/config"
	"mentormatch/internal/demoserver"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	gin.SetMode(cfg.Demo.GinMode)

	ctx := context.Background()

	var store demoserver.Store
	if cfg.Demo.DatabaseURL != "" {
		pg, err := postgres.Open(ctx, cfg.Demo.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
		defer pg.Close()
		store = pg
		log.Println("Using Postgres store")
	} else {
		store = demoserver.NewMemStore()
		log.Println("Using in-memory store")
	}

	engine := demoserver.NewEngine()
	if cfg.Demo.SeedProfiles > 0 {
		if existing, err := store.ListProfiles(ctx); err != nil {
			log.Fatal("Failed to check existing profiles:", err)
		} else if len(existing) == 0 {
			if err := demoserver.Seed(ctx, store, engine, cfg.Demo.SeedProfiles); err != nil {
				log.Fatal("Failed to seed profiles:", err)
			}
			log.Printf("Seeded %d mentor profiles", cfg.Demo.SeedProfiles)
		}
	}

	// Browser clients may be served from a different origin than the API.
	handler := cors.AllowAll().Handler(demoserver.NewServer(store).Router())

	log.Printf("Starting MentorMatch backend on http://localhost:%s/api", cfg.Demo.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Demo.Port, handler))
}
