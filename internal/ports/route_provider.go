package ports

import (
	"context"

	"freight-quote-service/internal/domain"
)

// Route is a driving route as returned by the external routing provider:
// decoded geometry plus leg totals. The core consumes it as a plain
// value; retry and caching for the provider live behind this port.
type Route struct {
	Points          []domain.GeoPoint
	DistanceMi      float64
	DurationSeconds int
}

// Contract for retrieving a truck route between two coordinates.
type RouteProvider interface {
	// Return the route from origin to destination.
	GetRoute(ctx context.Context, origin, destination domain.GeoPoint) (Route, error)
}
