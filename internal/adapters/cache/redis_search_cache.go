package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"placemap/internal/domain"
	"placemap/internal/platform/obs"
	"placemap/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
)

const searchKeyPrefix = "placemap:search:"

// OpenNowTTL bounds how long open-now results are reused, since opening
// hours flip while an entry is cached.
const OpenNowTTL = 2 * time.Minute

// RedisSearchCache keeps text search results for a bounded time so repeated
// filter round-trips and page reloads do not hit the provider again.
type RedisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSearchCache(client *redis.Client, ttl time.Duration) *RedisSearchCache {
	return &RedisSearchCache{client: client, ttl: ttl}
}

type cachedPlace struct {
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	DisplayName      string   `json:"display_name"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	ReviewCount      *int     `json:"review_count,omitempty"`
	BusinessStatus   string   `json:"business_status,omitempty"`
	PhotoName        string   `json:"photo_name,omitempty"`
}

// searchKey derives a stable key from every request field that changes the result.
func searchKey(req ports.TextSearchRequest) string {
	raw := fmt.Sprintf("%s|%.6f|%.6f|%.0f|%s|%s|%d|%t",
		req.Query, req.LocationBias.Lat, req.LocationBias.Lng, req.BiasRadius,
		req.Language, req.Region, req.MaxResultCount, req.OpenNow)
	sum := sha1.Sum([]byte(raw))
	return searchKeyPrefix + hex.EncodeToString(sum[:])
}

func (c *RedisSearchCache) Get(ctx context.Context, req ports.TextSearchRequest) (_ []domain.Place, _ bool, err error) {
	defer obs.Time(ctx, "search.cache.Get")(&err)

	if c.client == nil {
		return nil, false, errors.New("search cache: redis client is nil")
	}

	b, err := c.client.Get(ctx, searchKey(req)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get search cache: %w", err)
	}

	var stored []cachedPlace
	if err := json.Unmarshal(b, &stored); err != nil {
		return nil, false, fmt.Errorf("get search cache: decode: %w", err)
	}

	out := make([]domain.Place, 0, len(stored))
	for _, p := range stored {
		out = append(out, domain.Place{
			Location:         domain.Coordinates{Lat: p.Lat, Lng: p.Lng},
			DisplayName:      p.DisplayName,
			FormattedAddress: p.FormattedAddress,
			Rating:           p.Rating,
			ReviewCount:      p.ReviewCount,
			BusinessStatus:   p.BusinessStatus,
			PhotoName:        p.PhotoName,
		})
	}

	return out, true, nil
}

func (c *RedisSearchCache) Put(ctx context.Context, req ports.TextSearchRequest, places []domain.Place) error {
	if c.client == nil {
		return errors.New("search cache: redis client is nil")
	}

	stored := make([]cachedPlace, 0, len(places))
	for _, p := range places {
		stored = append(stored, cachedPlace{
			Lat:              p.Location.Lat,
			Lng:              p.Location.Lng,
			DisplayName:      p.DisplayName,
			FormattedAddress: p.FormattedAddress,
			Rating:           p.Rating,
			ReviewCount:      p.ReviewCount,
			BusinessStatus:   p.BusinessStatus,
			PhotoName:        p.PhotoName,
		})
	}

	b, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("put search cache: encode: %w", err)
	}

	if err := c.client.Set(ctx, searchKey(req), b, c.ttlFor(req)).Err(); err != nil {
		return fmt.Errorf("put search cache: %w", err)
	}

	return nil
}

// ttlFor returns the entry lifetime for req. A zero ttl never expires, so
// open-now requests always get a bounded one.
func (c *RedisSearchCache) ttlFor(req ports.TextSearchRequest) time.Duration {
	if req.OpenNow && (c.ttl <= 0 || c.ttl > OpenNowTTL) {
		return OpenNowTTL
	}
	return c.ttl
}
