package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"freight-quote-service/internal/adapters/cache"
	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/platform/obs"
	"freight-quote-service/internal/ports"
)

const metersPerMile = 1609.344

// ORSRouteProvider implements RouteProvider using the OpenRouteService
// directions endpoint with the heavy-goods-vehicle profile.
//
// It coordinates:
//   - External API calls with retry/backoff
//   - Polyline decoding into route points
//   - Optional persistent caching of fetched routes
//
// The provider is safe for concurrent use.
type ORSRouteProvider struct {
	session    *http.Client
	apiKey     string
	baseURL    string
	profile    string
	routeCache *cache.SQLRouteCache
}

func NewORSRouteProvider(apiKey string, routeCache *cache.SQLRouteCache) (*ORSRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSRouteProvider{
		session:    &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    "https://api.openrouteservice.org",
		profile:    "driving-hgv",
		routeCache: routeCache,
	}, nil
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

// GetRoute returns the truck route between two coordinates, consulting
// the persistent cache before calling ORS.
func (o *ORSRouteProvider) GetRoute(
	ctx context.Context,
	origin, destination domain.GeoPoint,
) (_ ports.Route, err error) {
	defer obs.Time(ctx, "ors.GetRoute")(&err)

	originKey := cacheKey(origin)
	destKey := cacheKey(destination)

	if o.routeCache != nil {
		entry, ok, err := o.routeCache.Get(ctx, originKey, destKey)
		if err != nil {
			return ports.Route{}, fmt.Errorf("get route cache: %w", err)
		}
		if ok {
			points, err := DecodePolyline(entry.Geometry)
			if err != nil {
				return ports.Route{}, fmt.Errorf("decode cached route geometry: %w", err)
			}
			return ports.Route{
				Points:          points,
				DistanceMi:      entry.DistanceMi,
				DurationSeconds: entry.DurationSeconds,
			}, nil
		}
	}

	route, geometry, err := o.fetchRoute(ctx, origin, destination)
	if err != nil {
		return ports.Route{}, fmt.Errorf("fetch route %s -> %s: %w", originKey, destKey, err)
	}

	if o.routeCache != nil {
		entry := cache.RouteEntry{
			Geometry:        geometry,
			DistanceMi:      route.DistanceMi,
			DurationSeconds: route.DurationSeconds,
		}
		if err := o.routeCache.Put(ctx, originKey, destKey, entry); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("route cache write failed")
		}
	}

	return route, nil
}

func (o *ORSRouteProvider) fetchRoute(
	ctx context.Context,
	origin, destination domain.GeoPoint,
) (ports.Route, string, error) {
	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)

	// ORS expects [lon, lat] pairs.
	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{
			{origin.Lon, origin.Lat},
			{destination.Lon, destination.Lat},
		},
	})
	if err != nil {
		return ports.Route{}, "", fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return ports.Route{}, "", fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return ports.Route{}, "", fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Routes) == 0 {
		return ports.Route{}, "", errors.New("directions response contains no routes")
	}

	best := dr.Routes[0]
	points, err := DecodePolyline(best.Geometry)
	if err != nil {
		return ports.Route{}, "", fmt.Errorf("decode route geometry: %w", err)
	}
	if len(points) < 2 {
		return ports.Route{}, "", fmt.Errorf("route geometry has %d points", len(points))
	}

	return ports.Route{
		Points:          points,
		DistanceMi:      best.Summary.Distance / metersPerMile,
		DurationSeconds: int(best.Summary.Duration),
	}, best.Geometry, nil
}

// cacheKey rounds to ~1 m so float noise does not fragment the cache.
func cacheKey(p domain.GeoPoint) string {
	return fmt.Sprintf("%.5f,%.5f", p.Lat, p.Lon)
}
