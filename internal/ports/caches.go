package ports

import (
	"context"
	"placemap/internal/domain"
)

// Persistent address -> coordinate cache.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}

// Short-lived cache of text search results keyed by request.
type SearchCache interface {
	// Return cached places and whether the key was present.
	Get(ctx context.Context, req TextSearchRequest) ([]domain.Place, bool, error)
	Put(ctx context.Context, req TextSearchRequest, places []domain.Place) error
}
