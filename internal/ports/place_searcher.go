package ports

import (
	"context"
	"placemap/internal/domain"
)

// Parameters for a free-text place search biased toward a location.
type TextSearchRequest struct {
	Query          string
	LocationBias   domain.Coordinates
	BiasRadius     float64
	Language       string
	Region         string
	MaxResultCount int
	OpenNow        bool
}

// Contract for a provider's text-based place search.
type PlaceSearcher interface {
	// Return the places matching req, in provider ranking order.
	SearchText(ctx context.Context, req TextSearchRequest) ([]domain.Place, error)
}
