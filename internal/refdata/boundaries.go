package refdata

import "freight-quote-service/internal/domain"

// Simplified state outlines for the southwest corridor. The shapes are
// coarse on purpose: leg midpoints along highways sit well inside state
// interiors, and the resolver attributes near-border gaps to the last
// confirmed jurisdiction. Deployments needing survey-grade boundaries
// supply them through the tables file.
func defaultBoundaries() []domain.Boundary {
	return []domain.Boundary{
		{
			Jurisdiction: "AZ",
			Outer: []domain.GeoPoint{
				{Lat: 31.33, Lon: -114.81},
				{Lat: 37.00, Lon: -114.81},
				{Lat: 37.00, Lon: -109.05},
				{Lat: 31.33, Lon: -109.05},
			},
		},
		{
			Jurisdiction: "NM",
			Outer: []domain.GeoPoint{
				{Lat: 31.33, Lon: -109.05},
				{Lat: 37.00, Lon: -109.05},
				{Lat: 37.00, Lon: -103.00},
				{Lat: 31.33, Lon: -103.00},
			},
		},
		{
			// Utah's northeast notch keeps this polygon concave.
			Jurisdiction: "UT",
			Outer: []domain.GeoPoint{
				{Lat: 37.00, Lon: -114.05},
				{Lat: 42.00, Lon: -114.05},
				{Lat: 42.00, Lon: -111.05},
				{Lat: 41.00, Lon: -111.05},
				{Lat: 41.00, Lon: -109.05},
				{Lat: 37.00, Lon: -109.05},
			},
		},
		{
			Jurisdiction: "CO",
			Outer: []domain.GeoPoint{
				{Lat: 37.00, Lon: -109.05},
				{Lat: 41.00, Lon: -109.05},
				{Lat: 41.00, Lon: -102.05},
				{Lat: 37.00, Lon: -102.05},
			},
		},
		{
			Jurisdiction: "NV",
			Outer: []domain.GeoPoint{
				{Lat: 42.00, Lon: -120.00},
				{Lat: 42.00, Lon: -114.05},
				{Lat: 37.00, Lon: -114.05},
				{Lat: 35.00, Lon: -114.60},
				{Lat: 39.00, Lon: -120.00},
			},
		},
		{
			Jurisdiction: "CA",
			Outer: []domain.GeoPoint{
				{Lat: 42.00, Lon: -124.40},
				{Lat: 42.00, Lon: -120.00},
				{Lat: 39.00, Lon: -120.00},
				{Lat: 35.00, Lon: -114.60},
				{Lat: 32.50, Lon: -114.60},
				{Lat: 32.50, Lon: -117.10},
				{Lat: 34.00, Lon: -120.60},
				{Lat: 40.00, Lon: -124.40},
			},
		},
		{
			Jurisdiction: "TX",
			Outer: []domain.GeoPoint{
				{Lat: 31.90, Lon: -106.60},
				{Lat: 32.00, Lon: -103.05},
				{Lat: 36.50, Lon: -103.05},
				{Lat: 36.00, Lon: -94.00},
				{Lat: 29.50, Lon: -93.80},
				{Lat: 25.90, Lon: -97.10},
				{Lat: 29.30, Lon: -104.90},
			},
		},
	}
}
