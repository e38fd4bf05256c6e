package routing

import (
	"context"
	"fmt"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/ports"
)

type MockRoute struct {
	From, To domain.GeoPoint
	Route    ports.Route
}

type MockRouteProvider struct {
	m map[string]ports.Route
}

func NewMockRouteProvider(routes []MockRoute) *MockRouteProvider {
	m := make(map[string]ports.Route, len(routes))
	for _, r := range routes {
		m[cacheKey(r.From)+"|"+cacheKey(r.To)] = r.Route
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) GetRoute(ctx context.Context, origin, destination domain.GeoPoint) (ports.Route, error) {
	r, ok := p.m[cacheKey(origin)+"|"+cacheKey(destination)]
	if !ok {
		return ports.Route{}, fmt.Errorf("missing route %s -> %s", cacheKey(origin), cacheKey(destination))
	}

	return r, nil
}
