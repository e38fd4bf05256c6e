package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/geo"
)

func TestAnalyzeTextCompleteRequest(t *testing.T) {
	result := AnalyzeText("48 x 8 x 9, 42000 lbs", testCatalog())

	assert.Empty(t, result.MissingFields)
	assert.Equal(t, 1.0, result.Load.Confidence)
	assert.NotEmpty(t, result.Recommendations)
	assert.Empty(t, result.Warnings)
}

func TestAnalyzeTextMissingFieldsSuppressesRecommendations(t *testing.T) {
	result := AnalyzeText("we have a wide load, about 11 ft", testCatalog())

	assert.NotEmpty(t, result.MissingFields)
	assert.Empty(t, result.Recommendations)

	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "missing required fields")
}

func TestAnalyzeTextNothingCanCarry(t *testing.T) {
	result := AnalyzeText("1200 x 250 x 200, 600000 lbs", testCatalog())

	assert.Empty(t, result.MissingFields)
	assert.Empty(t, result.Recommendations)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "no trailer configuration")
}

func TestPriceRouteRejectsShortGeometry(t *testing.T) {
	index := geo.NewIndex(nil)

	_, err := PriceRoute([]domain.GeoPoint{{Lat: 35, Lon: -108}}, domain.CargoDims{}, index, testPricing())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestPriceRouteRejectsNonFiniteCoordinates(t *testing.T) {
	index := geo.NewIndex(nil)
	points := []domain.GeoPoint{
		{Lat: 35, Lon: -108},
		{Lat: math.NaN(), Lon: -108},
	}

	_, err := PriceRoute(points, domain.CargoDims{}, index, testPricing())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestPriceRouteRejectsOutOfRangeCoordinates(t *testing.T) {
	index := geo.NewIndex(nil)
	points := []domain.GeoPoint{{Lat: 35, Lon: -108}, {Lat: 95, Lon: -108}}

	_, err := PriceRoute(points, domain.CargoDims{}, index, testPricing())
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestPriceRouteEndToEnd(t *testing.T) {
	points := []domain.GeoPoint{
		{Lat: 35.0, Lon: -109.0},
		{Lat: 35.0, Lon: -108.0},
		{Lat: 35.0, Lon: -106.0},
		{Lat: 35.0, Lon: -105.0},
	}

	quote, err := PriceRoute(points, legalCargo(), testResolveIndex(t), testPricing())
	require.NoError(t, err)

	require.Len(t, quote.Segments, 2)
	assert.InDelta(t, geo.PolylineLengthMi(points), quote.TotalDistanceMi, 1e-9)
	assert.Len(t, quote.Breakdown.Jurisdictions, 2)
}

func testResolveIndex(t *testing.T) *geo.Index {
	t.Helper()
	return geo.NewIndex([]domain.Boundary{
		{
			Jurisdiction: "AA",
			Outer: []domain.GeoPoint{
				{Lat: 30, Lon: -110}, {Lat: 40, Lon: -110},
				{Lat: 40, Lon: -107}, {Lat: 30, Lon: -107},
			},
		},
		{
			Jurisdiction: "BB",
			Outer: []domain.GeoPoint{
				{Lat: 30, Lon: -107}, {Lat: 40, Lon: -107},
				{Lat: 40, Lon: -104}, {Lat: 30, Lon: -104},
			},
		},
	})
}
