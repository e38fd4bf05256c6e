package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"freight-quote-service/internal/platform/obs"
)

// RouteEntry is one cached provider response: the encoded geometry plus
// route totals. Geometry stays encoded at rest; the provider decodes it
// on read.
type RouteEntry struct {
	Geometry        string
	DistanceMi      float64
	DurationSeconds int
}

// SQLRouteCache is a SQL-backed cache for origin->destination routes
// fetched from the external routing provider.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Fetch a cached route for one origin/destination pair.
func (s *SQLRouteCache) Get(
	ctx context.Context,
	origin string,
	destination string,
) (_ RouteEntry, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return RouteEntry{}, false, errors.New("route cache: db is nil")
	}

	if origin == "" || destination == "" {
		return RouteEntry{}, false, errors.New("get route cache: origin and destination must not be empty")
	}

	q := `
	SELECT geometry, distance_miles, duration_seconds
	FROM route_cache
	WHERE origin = $1 AND destination = $2;
	`

	var entry RouteEntry
	err = s.DB.QueryRowContext(ctx, q, origin, destination).
		Scan(&entry.Geometry, &entry.DistanceMi, &entry.DurationSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return RouteEntry{}, false, nil
	}
	if err != nil {
		return RouteEntry{}, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	return entry, true, nil
}

// Store a fetched route for an origin/destination pair.
func (s *SQLRouteCache) Put(
	ctx context.Context,
	origin string,
	destination string,
	entry RouteEntry,
) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if origin == "" || destination == "" {
		return errors.New("insert route cache: origin and destination must not be empty")
	}

	q := `
	INSERT INTO route_cache (origin, destination, geometry, distance_miles, duration_seconds)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (origin, destination) DO UPDATE
	SET geometry = EXCLUDED.geometry,
		distance_miles = EXCLUDED.distance_miles,
		duration_seconds = EXCLUDED.duration_seconds;
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, entry.Geometry, entry.DistanceMi, entry.DurationSeconds); err != nil {
		return fmt.Errorf("insert route cache %q -> %q: %w", origin, destination, err)
	}

	return nil
}

// InitSchema creates the route cache table.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS route_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		geometry TEXT NOT NULL,
		distance_miles DOUBLE PRECISION NOT NULL,
		duration_seconds INTEGER NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create route_cache table: %w", err)
	}

	return nil
}
