package geo

import (
	"math"

	"placemap/internal/domain"
)

const EarthRadiusMeters = 6371000.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Distance computes the great-circle distance between two points in meters
// using the haversine formula on a spherical Earth.
func Distance(a, b domain.Coordinates) float64 {
	phi1 := toRadians(a.Lat)
	phi2 := toRadians(b.Lat)
	dPhi := toRadians(b.Lat - a.Lat)
	dLambda := toRadians(b.Lng - a.Lng)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}
