package ports

import (
	"context"
	"errors"
	"placemap/internal/domain"
)

var ErrAddressNotFound = errors.New("address not found")

// Contract for forward geocoding (address -> coordinates).
type Geocoder interface {
	// Resolve a free-text address. Returns ErrAddressNotFound when the
	// provider has no match.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// Optional provider capability: resolve a photo reference into a fetchable URI.
type PhotoResolver interface {
	PhotoURI(ctx context.Context, name string, maxWidth, maxHeight int) (string, error)
}
