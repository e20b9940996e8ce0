package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"placemap/internal/domain"
	"placemap/internal/platform/obs"
	"placemap/internal/ports"
)

const searchFieldMask = "places.displayName,places.location,places.businessStatus," +
	"places.rating,places.photos,places.formattedAddress,places.userRatingCount"

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type searchTextRequest struct {
	TextQuery           string        `json:"textQuery"`
	LocationBias        *locationBias `json:"locationBias,omitempty"`
	OpenNow             bool          `json:"openNow,omitempty"`
	LanguageCode        string        `json:"languageCode,omitempty"`
	RegionCode          string        `json:"regionCode,omitempty"`
	PageSize            int           `json:"pageSize,omitempty"`
	StrictTypeFiltering bool          `json:"strictTypeFiltering"`
}

type locationBias struct {
	Circle struct {
		Center latLng  `json:"center"`
		Radius float64 `json:"radius"`
	} `json:"circle"`
}

type searchTextResponse struct {
	Places []struct {
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		FormattedAddress string   `json:"formattedAddress"`
		Location         *latLng  `json:"location"`
		Rating           *float64 `json:"rating"`
		UserRatingCount  *int     `json:"userRatingCount"`
		BusinessStatus   string   `json:"businessStatus"`
		Photos           []struct {
			Name string `json:"name"`
		} `json:"photos"`
	} `json:"places"`
}

// Places API caps the bias circle radius at 50 km.
const maxBiasRadius = 50000.0

// SearchText runs a Places text search, consulting the search cache first.
func (g *GoogleProvider) SearchText(
	ctx context.Context,
	req ports.TextSearchRequest,
) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "google.SearchText")(&err)

	req.Query = normalize(req.Query)
	if req.Query == "" {
		return nil, errors.New("search text: query must be non-empty")
	}

	if g.searchCache != nil {
		cached, ok, err := g.searchCache.Get(ctx, req)
		if err != nil {
			log.Printf("search cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	fetched, err := g.fetchSearchText(ctx, req)
	if err != nil {
		return nil, err
	}

	if g.searchCache != nil {
		if err := g.searchCache.Put(ctx, req, fetched); err != nil {
			log.Printf("search cache write failed: %v", err)
		}
	}

	return fetched, nil
}

func (g *GoogleProvider) fetchSearchText(ctx context.Context, req ports.TextSearchRequest) ([]domain.Place, error) {
	endpoint := g.placesURL + "/v1/places:searchText"

	bodyObj := searchTextRequest{
		TextQuery:    req.Query,
		OpenNow:      req.OpenNow,
		LanguageCode: req.Language,
		RegionCode:   req.Region,
		PageSize:     req.MaxResultCount,
	}
	if req.LocationBias.Valid() {
		bias := &locationBias{}
		bias.Circle.Center = latLng{Latitude: req.LocationBias.Lat, Longitude: req.LocationBias.Lng}
		bias.Circle.Radius = min(max(req.BiasRadius, 0), maxBiasRadius)
		bodyObj.LocationBias = bias
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		r, err := g.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		r.Header.Set("X-Goog-Api-Key", g.apiKey)
		r.Header.Set("X-Goog-FieldMask", searchFieldMask)
		return r, nil
	})
	if err != nil {
		return nil, fmt.Errorf("search text request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded searchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]domain.Place, 0, len(decoded.Places))
	for _, p := range decoded.Places {
		if p.Location == nil {
			continue
		}

		place := domain.Place{
			Location:         domain.Coordinates{Lat: p.Location.Latitude, Lng: p.Location.Longitude},
			DisplayName:      p.DisplayName.Text,
			FormattedAddress: p.FormattedAddress,
			Rating:           p.Rating,
			ReviewCount:      p.UserRatingCount,
			BusinessStatus:   p.BusinessStatus,
		}
		if len(p.Photos) > 0 {
			place.PhotoName = p.Photos[0].Name
		}
		out = append(out, place)
	}

	return out, nil
}
