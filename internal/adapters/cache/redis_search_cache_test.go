package cache

import (
	"context"
	"placemap/internal/domain"
	"placemap/internal/ports"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisSearchCache, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSearchCache(client, ttl), s
}

func TestRedisSearchCacheRoundTrip(t *testing.T) {
	c, _ := newRedisCache(t, time.Minute)
	ctx := context.Background()

	rating := 4.5
	reviews := 12
	req := ports.TextSearchRequest{Query: "tacos", LocationBias: domain.Coordinates{Lat: 30.37, Lng: -107.88}}
	places := []domain.Place{{
		Location:       domain.Coordinates{Lat: 30.4, Lng: -107.9},
		DisplayName:    "Tacos",
		Rating:         &rating,
		ReviewCount:    &reviews,
		BusinessStatus: domain.BusinessStatusOperational,
		PhotoName:      "places/a/photos/b",
	}}

	if _, ok, err := c.Get(ctx, req); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	if err := c.Put(ctx, req, places); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, req)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].DisplayName != "Tacos" || got[0].RatingOrZero() != 4.5 || got[0].ReviewCountOrZero() != 12 {
		t.Fatalf("unexpected cached places: %+v", got)
	}
	if got[0].PhotoName != "places/a/photos/b" || !got[0].Operational() {
		t.Fatalf("lost fields: %+v", got[0])
	}

	other := req
	other.LocationBias.Lat = 28.63
	if _, ok, _ := c.Get(ctx, other); ok {
		t.Fatalf("different bias must not share a key")
	}
}

func TestRedisSearchCacheExpires(t *testing.T) {
	c, s := newRedisCache(t, 10*time.Second)
	ctx := context.Background()
	req := ports.TextSearchRequest{Query: "cafe"}

	if err := c.Put(ctx, req, []domain.Place{{DisplayName: "Cafe"}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	s.FastForward(11 * time.Second)

	if _, ok, err := c.Get(ctx, req); err != nil || ok {
		t.Fatalf("expected expired entry, got ok=%v err=%v", ok, err)
	}
}

func TestRedisSearchCacheCorruptEntry(t *testing.T) {
	c, s := newRedisCache(t, time.Minute)
	req := ports.TextSearchRequest{Query: "broken"}

	if err := s.Set(searchKey(req), "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, _, err := c.Get(context.Background(), req); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestRedisSearchCacheOpenNowTTL(t *testing.T) {
	ctx := context.Background()
	places := []domain.Place{{DisplayName: "Tacos"}}

	cases := []struct {
		name    string
		ttl     time.Duration
		openNow bool
		want    time.Duration
	}{
		{"open now capped", 10 * time.Minute, true, OpenNowTTL},
		{"open now shorter ttl kept", 30 * time.Second, true, 30 * time.Second},
		{"open now without ttl", 0, true, OpenNowTTL},
		{"any hours keep configured ttl", 10 * time.Minute, false, 10 * time.Minute},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, s := newRedisCache(t, tc.ttl)
			req := ports.TextSearchRequest{Query: "tacos", OpenNow: tc.openNow}

			if err := c.Put(ctx, req, places); err != nil {
				t.Fatalf("put: %v", err)
			}
			if got := s.TTL(searchKey(req)); got != tc.want {
				t.Fatalf("ttl = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRedisSearchCacheOpenNowEntryExpires(t *testing.T) {
	c, s := newRedisCache(t, 10*time.Minute)
	ctx := context.Background()
	req := ports.TextSearchRequest{Query: "cafe", OpenNow: true}

	if err := c.Put(ctx, req, []domain.Place{{DisplayName: "Cafe"}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	s.FastForward(OpenNowTTL + time.Second)

	if _, ok, err := c.Get(ctx, req); err != nil || ok {
		t.Fatalf("expected open-now entry to expire, got ok=%v err=%v", ok, err)
	}
}
