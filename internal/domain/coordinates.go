package domain

import "math"

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Valid reports whether c is a finite latitude/longitude pair within range.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
