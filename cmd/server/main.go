package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"placemap/internal/adapters/cache"
	"placemap/internal/adapters/places"
	"placemap/internal/adapters/repositories"
	"placemap/internal/api"
	"placemap/internal/config"
	"placemap/internal/domain"
	"placemap/internal/platform/db"
	"placemap/internal/ports"
	"placemap/internal/services"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const (
	sessionIdleTimeout = 30 * time.Minute
	pruneInterval      = 5 * time.Minute
)

// main is the application composition root.
// It wires the Google provider behind ports, attaches the optional Postgres
// and Redis caches, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()
	if strings.TrimSpace(cfg.GoogleMapsAPIKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []places.Option{}
	var categories ports.CategoryRepository

	// Postgres is optional: without it geocodes are not persisted and the
	// built-in category table is used.
	if cfg.DatabaseURL != "" {
		pool, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()

		if err := initAndSeed(ctx, pool, cfg.SeedPath); err != nil {
			log.Fatal(err)
		}

		opts = append(opts, places.WithGeocodeCache(cache.NewSQLGeocodeCache(pool)))
		categories = repositories.NewSQLCategoryRepository(pool)
	}

	rdb, err := db.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Printf("redis unavailable, search cache disabled: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
		opts = append(opts, places.WithSearchCache(cache.NewRedisSearchCache(rdb, cfg.SearchCacheTTL)))
	}

	provider, err := places.NewGoogleProvider(cfg.GoogleMapsAPIKey, opts...)
	if err != nil {
		log.Fatal(err)
	}

	explorer := services.NewExplorer(provider, provider, categories, services.ExplorerConfig{
		InitialCenter: domain.Coordinates{Lat: cfg.InitialLat, Lng: cfg.InitialLng},
		InitialQuery:  cfg.InitialQuery,
		DefaultCity:   cfg.DefaultCity,
		BiasRadius:    cfg.BiasRadius,
		Language:      cfg.Language,
		Region:        cfg.Region,
		MaxResults:    cfg.MaxResults,
		OpenNow:       true,
	})
	go pruneSessions(ctx, explorer)

	router := api.NewRouter(explorer, provider)

	// Timeouts allow for a cold-cache provider round trip with retries.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}

func initAndSeed(ctx context.Context, pool *pgxpool.Pool, seedPath string) error {
	if err := repositories.InitSchema(ctx, pool); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(ctx, pool, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

func pruneSessions(ctx context.Context, explorer *services.Explorer) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := explorer.PruneIdle(sessionIdleTimeout); n > 0 {
				log.Printf("pruned idle sessions count=%d", n)
			}
		}
	}
}
