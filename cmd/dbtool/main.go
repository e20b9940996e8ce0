package main

import (
	"context"
	"log"
	"placemap/internal/adapters/repositories"
	"placemap/internal/config"
	"placemap/internal/platform/db"
	"strings"

	"github.com/joho/godotenv"
)

// dbtool creates the schema and (re)seeds the category table.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, pool); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding categories path=%s", cfg.SeedPath)
	if err := repositories.SeedFromJSON(ctx, pool, cfg.SeedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
