package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"placemap/internal/domain"
	"placemap/internal/platform/obs"
	"placemap/internal/ports"
)

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address through the geocode cache, falling back to
// the Google Geocoding API (/maps/api/geocode/json) on a miss.
func (g *GoogleProvider) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "google.Geocode")(&err)

	norm := normalize(address)
	if norm == "" {
		return domain.Coordinates{}, fmt.Errorf("geocode: address must be non-empty")
	}

	if g.geocodeCache != nil {
		hits, err := g.geocodeCache.GetMany(ctx, []string{norm})
		if err != nil {
			log.Printf("geocode cache read failed: %v", err)
		} else if c, ok := hits[norm]; ok {
			return c, nil
		}
	}

	coord, err := g.fetchGeocode(ctx, norm)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if g.geocodeCache != nil {
		if err := g.geocodeCache.PutMany(ctx, map[string]domain.Coordinates{norm: coord}); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return coord, nil
}

func (g *GoogleProvider) fetchGeocode(ctx context.Context, address string) (domain.Coordinates, error) {
	endpoint := g.geocodeURL + "/maps/api/geocode/json"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("address", address)
		q.Set("key", g.apiKey)
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	switch decoded.Status {
	case "OK":
	case "ZERO_RESULTS":
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, ports.ErrAddressNotFound)
	default:
		return domain.Coordinates{}, fmt.Errorf("geocode %q: status %s: %s", address, decoded.Status, decoded.ErrorMessage)
	}

	if len(decoded.Results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, ports.ErrAddressNotFound)
	}

	loc := decoded.Results[0].Geometry.Location
	coord := domain.Coordinates{Lat: loc.Lat, Lng: loc.Lng}
	if !coord.Valid() {
		return domain.Coordinates{}, fmt.Errorf("invalid coordinate for %q", address)
	}

	return coord, nil
}
