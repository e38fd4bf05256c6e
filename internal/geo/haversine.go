package geo

import (
	"math"

	"freight-quote-service/internal/domain"
)

// Mean Earth radius in statute miles.
const earthRadiusMi = 3958.8

// HaversineMi returns the great-circle distance between two points in miles.
func HaversineMi(a, b domain.GeoPoint) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMi * math.Asin(math.Sqrt(h))
}

// Midpoint returns the arithmetic midpoint of a segment. Route legs are
// short enough that spherical interpolation would not change containment
// results.
func Midpoint(a, b domain.GeoPoint) domain.GeoPoint {
	return domain.GeoPoint{
		Lat: (a.Lat + b.Lat) / 2,
		Lon: (a.Lon + b.Lon) / 2,
	}
}

// PolylineLengthMi sums consecutive-point haversine distances.
func PolylineLengthMi(points []domain.GeoPoint) float64 {
	total := 0.0
	for i := 0; i+1 < len(points); i++ {
		total += HaversineMi(points[i], points[i+1])
	}
	return total
}
