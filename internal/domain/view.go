package domain

// Circle is a radius overlay drawn around a center.
type Circle struct {
	Center       Coordinates
	RadiusMeters float64
}

// Line is a straight overlay from one coordinate to another.
type Line struct {
	From           Coordinates
	To             Coordinates
	DistanceMeters float64
}

// Bounds is the smallest latitude/longitude box containing a set of places.
type Bounds struct {
	SouthWest Coordinates
	NorthEast Coordinates
}

// MapView is everything a client needs to draw one refresh of the map:
// the pins and list entries, the centroid marker and the derived overlays.
// Optional parts are nil when they do not apply (no places, fewer than two
// places for the extrema lines, no radius filter).
type MapView struct {
	Query    string
	Center   Coordinates
	Places   []Place
	Centroid *Coordinates
	Nearest  *Line
	Farthest *Line
	Radius   *Circle
	Bounds   *Bounds
}

func (v *MapView) Empty() bool { return len(v.Places) == 0 }
