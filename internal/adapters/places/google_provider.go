package places

import (
	"errors"
	"net/http"
	"placemap/internal/ports"
	"strings"
	"time"
)

const (
	defaultPlacesURL  = "https://places.googleapis.com"
	defaultGeocodeURL = "https://maps.googleapis.com"
)

// GoogleProvider implements PlaceSearcher, Geocoder and PhotoResolver using
// the Google Places (New) and Geocoding web services.
//
// It coordinates:
//   - Query normalization
//   - Optional search result and geocode caching
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type GoogleProvider struct {
	session      *http.Client
	apiKey       string
	placesURL    string
	geocodeURL   string
	searchCache  ports.SearchCache
	geocodeCache ports.GeocodeCache
}

type Option func(*GoogleProvider)

// WithBaseURLs points the provider at alternative endpoints (tests, proxies).
func WithBaseURLs(placesURL, geocodeURL string) Option {
	return func(g *GoogleProvider) {
		g.placesURL = strings.TrimRight(placesURL, "/")
		g.geocodeURL = strings.TrimRight(geocodeURL, "/")
	}
}

func WithSearchCache(c ports.SearchCache) Option {
	return func(g *GoogleProvider) { g.searchCache = c }
}

func WithGeocodeCache(c ports.GeocodeCache) Option {
	return func(g *GoogleProvider) { g.geocodeCache = c }
}

func WithHTTPClient(c *http.Client) Option {
	return func(g *GoogleProvider) { g.session = c }
}

func NewGoogleProvider(apiKey string, opts ...Option) (*GoogleProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google maps api key is empty")
	}

	provider := &GoogleProvider{
		session:    &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		placesURL:  defaultPlacesURL,
		geocodeURL: defaultGeocodeURL,
	}
	for _, opt := range opts {
		opt(provider)
	}

	return provider, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
