package geo

import (
	"errors"

	"placemap/internal/domain"
)

var ErrTooFewPlaces = errors.New("at least two places with valid coordinates are required")

// Centroid returns the arithmetic mean of latitude and longitude over all
// places with valid coordinates. ok is false when no place qualifies.
func Centroid(places []domain.Place) (center domain.Coordinates, ok bool) {
	var sumLat, sumLng float64
	n := 0
	for _, p := range places {
		if !p.Location.Valid() {
			continue
		}
		sumLat += p.Location.Lat
		sumLng += p.Location.Lng
		n++
	}

	if n == 0 {
		return domain.Coordinates{}, false
	}

	return domain.Coordinates{Lat: sumLat / float64(n), Lng: sumLng / float64(n)}, true
}

// Extremum is a place together with its distance to a reference point.
type Extremum struct {
	Place          domain.Place
	DistanceMeters float64
}

// NearestAndFarthest scans places once and returns the members closest to
// and farthest from center. On equal distances the first place in scan
// order wins. Places with invalid coordinates are skipped.
func NearestAndFarthest(places []domain.Place, center domain.Coordinates) (nearest, farthest Extremum, err error) {
	if len(places) < 2 {
		return Extremum{}, Extremum{}, ErrTooFewPlaces
	}

	seen := 0
	for _, p := range places {
		if !p.Location.Valid() {
			continue
		}

		d := Distance(center, p.Location)
		if seen == 0 || d < nearest.DistanceMeters {
			nearest = Extremum{Place: p, DistanceMeters: d}
		}
		if seen == 0 || d > farthest.DistanceMeters {
			farthest = Extremum{Place: p, DistanceMeters: d}
		}
		seen++
	}

	if seen < 2 {
		return Extremum{}, Extremum{}, ErrTooFewPlaces
	}

	return nearest, farthest, nil
}

// FilterByRadius keeps the places within radiusMeters of center, boundary
// included. Result order follows the input.
func FilterByRadius(places []domain.Place, center domain.Coordinates, radiusMeters float64) []domain.Place {
	out := make([]domain.Place, 0, len(places))
	for _, p := range places {
		if !p.Location.Valid() {
			continue
		}
		if Distance(center, p.Location) <= radiusMeters {
			out = append(out, p)
		}
	}
	return out
}

// Bounds returns the bounding box of all valid place coordinates.
func Bounds(places []domain.Place) (domain.Bounds, bool) {
	var b domain.Bounds
	found := false
	for _, p := range places {
		c := p.Location
		if !c.Valid() {
			continue
		}

		if !found {
			b = domain.Bounds{SouthWest: c, NorthEast: c}
			found = true
			continue
		}

		b.SouthWest.Lat = min(b.SouthWest.Lat, c.Lat)
		b.SouthWest.Lng = min(b.SouthWest.Lng, c.Lng)
		b.NorthEast.Lat = max(b.NorthEast.Lat, c.Lat)
		b.NorthEast.Lng = max(b.NorthEast.Lng, c.Lng)
	}
	return b, found
}
