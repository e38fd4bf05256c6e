package routing

import (
	"errors"

	"freight-quote-service/internal/domain"
)

// DecodePolyline decodes a Google encoded polyline (precision 5, the
// format ORS returns) into coordinates. The core never sees the encoded
// form; decoding is strictly this adapter's concern.
func DecodePolyline(encoded string) ([]domain.GeoPoint, error) {
	var points []domain.GeoPoint
	lat, lon := 0, 0

	for i := 0; i < len(encoded); {
		dLat, n, err := decodeVarint(encoded, i)
		if err != nil {
			return nil, err
		}
		i = n

		dLon, n, err := decodeVarint(encoded, i)
		if err != nil {
			return nil, err
		}
		i = n

		lat += dLat
		lon += dLon
		points = append(points, domain.GeoPoint{
			Lat: float64(lat) / 1e5,
			Lon: float64(lon) / 1e5,
		})
	}

	return points, nil
}

func decodeVarint(s string, i int) (value int, next int, err error) {
	result, shift := 0, 0
	for {
		if i >= len(s) {
			return 0, 0, errors.New("decode polyline: truncated input")
		}
		b := int(s[i]) - 63
		if b < 0 {
			return 0, 0, errors.New("decode polyline: invalid character")
		}
		i++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return ^(result >> 1), i, nil
	}
	return result >> 1, i, nil
}
