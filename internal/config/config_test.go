package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.SearchCacheTTL != 10*time.Minute {
		t.Fatalf("search cache ttl = %v", cfg.SearchCacheTTL)
	}
	if cfg.DefaultCity != "Nuevo Casas Grandes" || cfg.Language != "es-MX" || cfg.Region != "mx" {
		t.Fatalf("unexpected search defaults: %+v", cfg)
	}
	if cfg.InitialLat != 30.378746 || cfg.InitialLng != -107.880062 {
		t.Fatalf("unexpected initial center: %v, %v", cfg.InitialLat, cfg.InitialLng)
	}
	if cfg.MaxResults != 20 {
		t.Fatalf("max results = %d", cfg.MaxResults)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("GOOGLE_MAPS_API_KEY", "key")
	t.Setenv("SEARCH_CACHE_TTL", "30s")
	t.Setenv("INITIAL_LAT", "28.632")
	t.Setenv("MAX_RESULTS", "5")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Fatalf("expected override port")
	}
	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected override database url")
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("expected override redis")
	}
	if cfg.GoogleMapsAPIKey != "key" {
		t.Fatalf("expected override api key")
	}
	if cfg.SearchCacheTTL != 30*time.Second {
		t.Fatalf("expected override ttl, got %v", cfg.SearchCacheTTL)
	}
	if cfg.InitialLat != 28.632 {
		t.Fatalf("expected override lat, got %v", cfg.InitialLat)
	}
	if cfg.MaxResults != 5 {
		t.Fatalf("expected override max results, got %d", cfg.MaxResults)
	}
}
