package services

import (
	"errors"
	"fmt"
	"math"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/geo"
)

// ErrInvalidGeometry marks malformed route input rejected before it
// reaches the boundary resolver.
var ErrInvalidGeometry = errors.New("invalid route geometry")

// RouteQuote pairs the resolved jurisdiction segments with their permit
// breakdown.
type RouteQuote struct {
	Segments        []domain.JurisdictionSegment
	Breakdown       domain.PermitBreakdown
	TotalDistanceMi float64
}

// PriceRoute validates the route geometry, decomposes it into
// per-jurisdiction distances, and prices permits and escorts. Geometry
// with fewer than two points or non-finite coordinates is a caller
// error; everything past validation degrades gracefully inside the
// engines.
func PriceRoute(
	points []domain.GeoPoint,
	cargo domain.CargoDims,
	index *geo.Index,
	tables domain.PricingTables,
) (RouteQuote, error) {
	if len(points) < 2 {
		return RouteQuote{}, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidGeometry, len(points))
	}
	for i, p := range points {
		if !finite(p.Lat) || !finite(p.Lon) {
			return RouteQuote{}, fmt.Errorf("%w: non-finite coordinate at index %d", ErrInvalidGeometry, i)
		}
		if p.Lat < -90 || p.Lat > 90 || p.Lon < -180 || p.Lon > 180 {
			return RouteQuote{}, fmt.Errorf("%w: coordinate out of range at index %d", ErrInvalidGeometry, i)
		}
	}

	segments := Resolve(points, index)

	total := 0.0
	for _, s := range segments {
		total += s.DistanceMi
	}

	return RouteQuote{
		Segments:        segments,
		Breakdown:       Price(segments, cargo, tables),
		TotalDistanceMi: total,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
