package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"variant-studio/app"
	"variant-studio/config"
	"variant-studio/db"
)

func main() {
	// Outside production a local .env wins over the process environment
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("⚠️  No .env loaded (%v), using process environment", err)
		} else {
			log.Printf("✓ Loaded .env (overrides process environment)")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := app.Initialize(cfg, http.DefaultServeMux); err != nil {
		log.Fatalf("Startup failed: %v", err)
	}
	defer db.CloseDB()

	// Bind all interfaces so the server is reachable from inside a container
	addr := "0.0.0.0:" + cfg.Port
	log.Printf("🎨 Variant studio listening on %s (db=%s, workers=%d, policy=%s)", addr, cfg.DBDriver, cfg.BatchWorkers, cfg.FailurePolicy)
	log.Printf("Upload endpoint: POST http://localhost:%s/api/upload (multipart: image, categoryId)", cfg.Port)

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
