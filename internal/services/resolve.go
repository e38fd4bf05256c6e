package services

import (
	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/geo"
)

// UnknownJurisdiction labels distance on a route that never entered any
// known boundary polygon.
const UnknownJurisdiction = "ZZ"

// Resolve attributes each route leg to the jurisdiction containing its
// midpoint and accumulates great-circle distance per jurisdiction.
// Segments appear in first-encounter order; re-entering a jurisdiction
// adds to its existing segment. Legs whose midpoint falls outside every
// boundary (water excursions, tiny geometry gaps) belong to the last
// confirmed jurisdiction; leading unresolved distance is credited to the
// first jurisdiction the route confirms.
func Resolve(points []domain.GeoPoint, index *geo.Index) []domain.JurisdictionSegment {
	if len(points) < 2 {
		return []domain.JurisdictionSegment{}
	}

	var order []string
	totals := make(map[string]float64)

	add := func(code string, d float64) {
		if _, seen := totals[code]; !seen {
			order = append(order, code)
		}
		totals[code] += d
	}

	last := ""
	pending := 0.0

	for i := 0; i+1 < len(points); i++ {
		d := geo.HaversineMi(points[i], points[i+1])
		mid := geo.Midpoint(points[i], points[i+1])

		code, ok := index.Locate(mid)
		if !ok {
			code = last
		}
		if code == "" {
			// Nothing confirmed yet; hold the distance.
			pending += d
			continue
		}

		if pending > 0 {
			add(code, pending)
			pending = 0
		}
		add(code, d)
		last = code
	}

	if pending > 0 {
		add(UnknownJurisdiction, pending)
	}

	segments := make([]domain.JurisdictionSegment, 0, len(order))
	for _, code := range order {
		segments = append(segments, domain.JurisdictionSegment{
			Jurisdiction: code,
			DistanceMi:   totals[code],
		})
	}
	return segments
}
