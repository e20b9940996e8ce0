package places

import (
	"context"
	"fmt"
	"placemap/internal/domain"
	"placemap/internal/platform/obs"
	"placemap/internal/ports"
	"sync"
)

// MockProvider serves canned search and geocode results keyed by query/address.
type MockProvider struct {
	mu        sync.Mutex
	results   map[string][]domain.Place
	geocodes  map[string]domain.Coordinates
	SearchErr error
	Requests  []ports.TextSearchRequest
}

func NewMockProvider(results map[string][]domain.Place, geocodes map[string]domain.Coordinates) *MockProvider {
	return &MockProvider{results: results, geocodes: geocodes}
}

func (p *MockProvider) SearchText(ctx context.Context, req ports.TextSearchRequest) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "mock.SearchText")(&err)

	p.mu.Lock()
	p.Requests = append(p.Requests, req)
	searchErr := p.SearchErr
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if searchErr != nil {
		return nil, searchErr
	}

	return append([]domain.Place(nil), p.results[normalize(req.Query)]...), nil
}

func (p *MockProvider) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	c, ok := p.geocodes[normalize(address)]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, ports.ErrAddressNotFound)
	}

	return c, nil
}

// LastRequest returns the most recent search request, if any.
func (p *MockProvider) LastRequest() (ports.TextSearchRequest, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Requests) == 0 {
		return ports.TextSearchRequest{}, false
	}
	return p.Requests[len(p.Requests)-1], true
}
