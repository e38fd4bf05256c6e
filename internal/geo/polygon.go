package geo

import "freight-quote-service/internal/domain"

// pointInRing implements the even-odd ray-casting test. It handles
// concave rings; points exactly on an edge may land on either side,
// which is acceptable for boundary polygons at route-leg resolution.
func pointInRing(p domain.GeoPoint, ring []domain.GeoPoint) bool {
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		a := ring[i]
		b := ring[j]
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) &&
			p.Lon < (b.Lon-a.Lon)*(p.Lat-a.Lat)/(b.Lat-a.Lat)+a.Lon {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Contains reports whether p lies inside the boundary's outer ring and
// outside every hole.
func Contains(b domain.Boundary, p domain.GeoPoint) bool {
	if !pointInRing(p, b.Outer) {
		return false
	}
	for _, hole := range b.Holes {
		if pointInRing(p, hole) {
			return false
		}
	}
	return true
}

type bbox struct {
	minLat, maxLat float64
	minLon, maxLon float64
}

func (b bbox) contains(p domain.GeoPoint) bool {
	return p.Lat >= b.minLat && p.Lat <= b.maxLat &&
		p.Lon >= b.minLon && p.Lon <= b.maxLon
}

// Index holds jurisdiction boundaries with precomputed bounding boxes so
// that routes of several hundred points resolve without noticeable
// latency.
type Index struct {
	boundaries []domain.Boundary
	boxes      []bbox
}

func NewIndex(boundaries []domain.Boundary) *Index {
	ix := &Index{
		boundaries: boundaries,
		boxes:      make([]bbox, len(boundaries)),
	}
	for i, b := range boundaries {
		box := bbox{minLat: 90, maxLat: -90, minLon: 180, maxLon: -180}
		for _, p := range b.Outer {
			if p.Lat < box.minLat {
				box.minLat = p.Lat
			}
			if p.Lat > box.maxLat {
				box.maxLat = p.Lat
			}
			if p.Lon < box.minLon {
				box.minLon = p.Lon
			}
			if p.Lon > box.maxLon {
				box.maxLon = p.Lon
			}
		}
		ix.boxes[i] = box
	}
	return ix
}

// Locate returns the jurisdiction containing p, or ok=false when p lies
// outside every known boundary.
func (ix *Index) Locate(p domain.GeoPoint) (string, bool) {
	for i, b := range ix.boundaries {
		if !ix.boxes[i].contains(p) {
			continue
		}
		if Contains(b, p) {
			return b.Jurisdiction, true
		}
	}
	return "", false
}
