package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"placemap/internal/domain"
	"placemap/internal/geo"
	"placemap/internal/ports"
	"strings"
	"sync"
	"time"
)

var (
	ErrEmptyQuery    = errors.New("search text must not be empty")
	ErrCityNotFound  = errors.New("city not found")
	ErrNoPlaces      = errors.New("no places to filter")
	ErrInvalidRadius = errors.New("radius must be a non-negative number of meters")
	// ErrSuperseded is returned to a search whose session started a newer one.
	ErrSuperseded = errors.New("search superseded by a newer search")
)

const DefaultFilterRadius = 1000.0

type ExplorerConfig struct {
	InitialCenter domain.Coordinates
	InitialQuery  string
	DefaultCity   string
	BiasRadius    float64
	Language      string
	Region        string
	MaxResults    int
	OpenNow       bool
}

// session is the per-client map state: where searches are biased, what was
// searched last and the places it returned.
type session struct {
	query    string
	center   domain.Coordinates
	places   []domain.Place
	searched bool

	generation uint64
	cancel     context.CancelFunc
	lastUsed   time.Time
}

// Explorer runs place searches and derives map views from their results.
//
// Each session keeps its own state. Starting a search cancels the session's
// in-flight one, and a superseded search never overwrites newer results.
// Explorer is safe for concurrent use.
type Explorer struct {
	searcher   ports.PlaceSearcher
	geocoder   ports.Geocoder
	categories ports.CategoryRepository
	cfg        ExplorerConfig
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func NewExplorer(
	searcher ports.PlaceSearcher,
	geocoder ports.Geocoder,
	categories ports.CategoryRepository,
	cfg ExplorerConfig,
) *Explorer {
	return &Explorer{
		searcher:   searcher,
		geocoder:   geocoder,
		categories: categories,
		cfg:        cfg,
		now:        time.Now,
		sessions:   make(map[string]*session),
	}
}

// sessionLocked returns the session for id, creating it on first use.
// e.mu must be held.
func (e *Explorer) sessionLocked(id string) *session {
	s, ok := e.sessions[id]
	if !ok {
		s = &session{center: e.cfg.InitialCenter}
		e.sessions[id] = s
	}
	s.lastUsed = e.now()
	return s
}

// Search runs a text search biased toward the session's center and replaces
// the session's current places with the result.
func (e *Explorer) Search(ctx context.Context, sessionID, text string) (*domain.MapView, error) {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil, ErrEmptyQuery
	}

	e.mu.Lock()
	s := e.sessionLocked(sessionID)
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	gen := s.generation
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	center := s.center
	e.mu.Unlock()
	defer cancel()

	places, err := e.searcher.SearchText(ctx, ports.TextSearchRequest{
		Query:          text,
		LocationBias:   center,
		BiasRadius:     e.cfg.BiasRadius,
		Language:       e.cfg.Language,
		Region:         e.cfg.Region,
		MaxResultCount: e.cfg.MaxResults,
		OpenNow:        e.cfg.OpenNow,
	})

	e.mu.Lock()
	defer e.mu.Unlock()

	if s.generation != gen {
		return nil, ErrSuperseded
	}
	s.cancel = nil

	if err != nil {
		return nil, fmt.Errorf("search %q: %w", text, err)
	}

	s.query = text
	s.places = places
	s.searched = true

	return buildView(text, center, places), nil
}

// SearchCategory searches "<category keywords> en <city>".
func (e *Explorer) SearchCategory(ctx context.Context, sessionID, category, city string) (*domain.MapView, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		city = e.cfg.DefaultCity
	}

	return e.Search(ctx, sessionID, fmt.Sprintf("%s en %s", e.Keywords(ctx, category), city))
}

// SearchCity geocodes city, moves the session's search bias there and
// searches restaurants in it.
func (e *Explorer) SearchCity(ctx context.Context, sessionID, city string) (*domain.MapView, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyQuery
	}

	loc, err := e.geocoder.Geocode(ctx, city)
	if errors.Is(err, ports.ErrAddressNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, city)
	}
	if err != nil {
		return nil, fmt.Errorf("geocode city %q: %w", city, err)
	}

	e.mu.Lock()
	e.sessionLocked(sessionID).center = loc
	e.mu.Unlock()

	return e.Search(ctx, sessionID, "Restaurantes en "+city)
}

// View returns the session's current view, running the initial search for
// sessions that have not searched yet.
func (e *Explorer) View(ctx context.Context, sessionID string) (*domain.MapView, error) {
	e.mu.Lock()
	s := e.sessionLocked(sessionID)
	if s.searched {
		v := buildView(s.query, s.center, s.places)
		e.mu.Unlock()
		return v, nil
	}
	e.mu.Unlock()

	return e.Search(ctx, sessionID, e.cfg.InitialQuery)
}

// SortByRating shows the current places highest rated first.
// The session's stored order is left untouched.
func (e *Explorer) SortByRating(sessionID string) *domain.MapView {
	return e.derive(sessionID, geo.SortByRating)
}

// SortByReviews shows the current places with the most reviews first.
func (e *Explorer) SortByReviews(sessionID string) *domain.MapView {
	return e.derive(sessionID, geo.SortByReviewCount)
}

func (e *Explorer) derive(sessionID string, fn func([]domain.Place) []domain.Place) *domain.MapView {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionLocked(sessionID)
	return buildView(s.query, s.center, fn(s.places))
}

// FilterByRadius shows the current places within radiusMeters of their
// centroid, together with the radius circle.
func (e *Explorer) FilterByRadius(sessionID string, radiusMeters float64) (*domain.MapView, error) {
	if radiusMeters < 0 || math.IsNaN(radiusMeters) {
		return nil, ErrInvalidRadius
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionLocked(sessionID)
	centroid, ok := geo.Centroid(s.places)
	if !ok {
		return nil, ErrNoPlaces
	}

	filtered := geo.FilterByRadius(s.places, centroid, radiusMeters)
	v := buildView(s.query, s.center, filtered)
	v.Radius = &domain.Circle{Center: centroid, RadiusMeters: radiusMeters}

	return v, nil
}

// PruneIdle drops sessions unused for longer than maxIdle and returns how
// many were removed.
func (e *Explorer) PruneIdle(maxIdle time.Duration) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	cutoff := e.now().Add(-maxIdle)
	n := 0
	for id, s := range e.sessions {
		if s.cancel == nil && s.lastUsed.Before(cutoff) {
			delete(e.sessions, id)
			n++
		}
	}
	return n
}

// Places returns a copy of the session's current places.
func (e *Explorer) Places(sessionID string) []domain.Place {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionLocked(sessionID)
	return append([]domain.Place(nil), s.places...)
}

// buildView derives the centroid, extrema lines and bounds for places.
func buildView(query string, center domain.Coordinates, places []domain.Place) *domain.MapView {
	v := &domain.MapView{
		Query:  query,
		Center: center,
		Places: places,
	}

	centroid, ok := geo.Centroid(places)
	if !ok {
		return v
	}
	v.Centroid = &centroid

	if b, ok := geo.Bounds(places); ok {
		v.Bounds = &b
	}

	nearest, farthest, err := geo.NearestAndFarthest(places, centroid)
	if err != nil {
		return v
	}
	v.Nearest = &domain.Line{From: centroid, To: nearest.Place.Location, DistanceMeters: nearest.DistanceMeters}
	v.Farthest = &domain.Line{From: centroid, To: farthest.Place.Location, DistanceMeters: farthest.DistanceMeters}

	return v
}
