package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

type photoMediaResponse struct {
	Name     string `json:"name"`
	PhotoURI string `json:"photoUri"`
}

// PhotoURI resolves a place photo reference ("places/{id}/photos/{ref}")
// into a short-lived public image URI.
func (g *GoogleProvider) PhotoURI(ctx context.Context, name string, maxWidth, maxHeight int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || !strings.HasPrefix(name, "places/") || strings.Contains(name, "..") {
		return "", errors.New("photo uri: invalid photo name")
	}

	endpoint := fmt.Sprintf("%s/v1/%s/media", g.placesURL, name)

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("maxWidthPx", strconv.Itoa(maxWidth))
		q.Set("maxHeightPx", strconv.Itoa(maxHeight))
		q.Set("skipHttpRedirect", "true")
		req.URL.RawQuery = q.Encode()
		req.Header.Set("X-Goog-Api-Key", g.apiKey)
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("photo media request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded photoMediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode photo media response: %w", err)
	}
	if decoded.PhotoURI == "" {
		return "", fmt.Errorf("photo media response for %q has no uri", name)
	}

	return decoded.PhotoURI, nil
}
