package domain

// Immutable geographic coordinate (WGS 84, decimal degrees).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// JurisdictionSegment is the accumulated travel distance within one
// administrative region along a route. Non-contiguous passes through the
// same jurisdiction sum into a single segment; segment order is the order
// of first encounter along the route.
type JurisdictionSegment struct {
	Jurisdiction string
	DistanceMi   float64
}

// Boundary is one jurisdiction's polygon: an outer ring plus optional
// holes (exclaves of neighboring jurisdictions). Rings need not be
// closed; the containment test treats the last vertex as connected to
// the first.
type Boundary struct {
	Jurisdiction string
	Outer        []GeoPoint
	Holes        [][]GeoPoint
}
