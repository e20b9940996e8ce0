package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"placemap/internal/platform/db"
	"strings"
)

// Initialize the Postgres schema.
func InitSchema(ctx context.Context, q db.Querier) error {
	if q == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	createCategoriesQuery := `
	CREATE TABLE IF NOT EXISTS categories (
		name TEXT PRIMARY KEY,
		keywords TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lat DOUBLE PRECISION NOT NULL,
        lng DOUBLE PRECISION NOT NULL
    );
	`

	statements := []string{
		createCategoriesQuery,
		createGeocodeCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type CategorySeed struct {
	Name     string `json:"name"`
	Keywords string `json:"keywords"`
}

// Populate the categories table from a JSON file. File order becomes
// display order.
func SeedFromJSON(ctx context.Context, q db.Querier, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed categories: read %q: %w", jsonPath, err)
	}

	var data []CategorySeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed categories: parse json: %w", err)
	}

	return SeedCategories(ctx, q, data)
}

func SeedCategories(ctx context.Context, q db.Querier, data []CategorySeed) error {
	rows := make([]CategorySeed, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed categories: item at index %d: name cannot be empty", i+1)
		}

		keywords := strings.TrimSpace(item.Keywords)
		if keywords == "" {
			return fmt.Errorf("seed categories: item %q: keywords cannot be empty", name)
		}
		rows = append(rows, CategorySeed{Name: name, Keywords: keywords})
	}

	tx, err := q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed categories: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
	INSERT INTO categories (name, keywords, position)
	VALUES ($1, $2, $3)
	ON CONFLICT (name) DO UPDATE
	SET keywords = EXCLUDED.keywords,
		position = EXCLUDED.position;
	`

	for i, c := range rows {
		if _, err := tx.Exec(ctx, query, c.Name, c.Keywords, i); err != nil {
			return fmt.Errorf("seed categories: insert name=%q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("seed categories: commit tx: %w", err)
	}

	return nil
}
