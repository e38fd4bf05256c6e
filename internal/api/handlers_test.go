package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-quote-service/internal/adapters/routing"
	"freight-quote-service/internal/api/dto"
	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/ports"
	"freight-quote-service/internal/refdata"
)

func testRouter(t *testing.T, provider ports.RouteProvider) http.Handler {
	t.Helper()
	return NewRouter(refdata.Default(), provider, zerolog.Nop())
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	h := testRouter(t, routing.NewMockRouteProvider(nil))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAnalyzeEndpoint(t *testing.T) {
	h := testRouter(t, routing.NewMockRouteProvider(nil))

	w := postJSON(t, h, "/api/v1/analyze", dto.AnalyzeRequest{
		Text: "48 x 8 x 9, 42000 lbs",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res dto.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert.Equal(t, 48.0, res.Load.LengthIn)
	assert.Equal(t, 1.0, res.Load.Confidence)
	assert.Empty(t, res.MissingFields)
	assert.NotEmpty(t, res.Recommendations)
	assert.Equal(t, 1, res.Recommendations[0].Rank)
}

func TestAnalyzeEndpointRejectsShortText(t *testing.T) {
	h := testRouter(t, routing.NewMockRouteProvider(nil))

	w := postJSON(t, h, "/api/v1/analyze", dto.AnalyzeRequest{Text: "hi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeEndpointRejectsBadJSON(t *testing.T) {
	h := testRouter(t, routing.NewMockRouteProvider(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteEndpoint(t *testing.T) {
	origin := domain.GeoPoint{Lat: 33.45, Lon: -112.07}      // Phoenix
	destination := domain.GeoPoint{Lat: 35.08, Lon: -106.65} // Albuquerque

	provider := routing.NewMockRouteProvider([]routing.MockRoute{{
		From: origin,
		To:   destination,
		Route: ports.Route{
			Points: []domain.GeoPoint{
				origin,
				{Lat: 34.2, Lon: -110.0},
				{Lat: 34.9, Lon: -108.0},
				destination,
			},
			DistanceMi:      330,
			DurationSeconds: 6 * 3600,
		},
	}})
	h := testRouter(t, provider)

	w := postJSON(t, h, "/api/v1/quotes", dto.QuoteRequest{
		Origin:      dto.PointRequest{Lat: origin.Lat, Lon: origin.Lon},
		Destination: dto.PointRequest{Lat: destination.Lat, Lon: destination.Lon},
		Cargo: dto.CargoDimsRequest{
			LengthIn: 480, WidthIn: 150, HeightIn: 120, GrossWeightLbs: 90000,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert.NotEmpty(t, res.QuoteID)
	assert.Equal(t, 6*3600, res.DurationSeconds)
	require.Len(t, res.Segments, 2)
	assert.Equal(t, "AZ", res.Segments[0].Jurisdiction)
	assert.Equal(t, "NM", res.Segments[1].Jurisdiction)

	// 150 in wide crosses every escort width threshold.
	for _, j := range res.Jurisdictions {
		assert.True(t, j.EscortRequired)
		assert.Greater(t, j.EscortCost, 0.0)
	}
	assert.Greater(t, res.TotalPermitFees, 0.0)
}

func TestQuoteEndpointSameOriginDestination(t *testing.T) {
	h := testRouter(t, routing.NewMockRouteProvider(nil))

	p := dto.PointRequest{Lat: 33.45, Lon: -112.07}
	w := postJSON(t, h, "/api/v1/quotes", dto.QuoteRequest{Origin: p, Destination: p})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteEndpointProviderFailure(t *testing.T) {
	// Empty mock: every route lookup fails.
	h := testRouter(t, routing.NewMockRouteProvider(nil))

	w := postJSON(t, h, "/api/v1/quotes", dto.QuoteRequest{
		Origin:      dto.PointRequest{Lat: 33.45, Lon: -112.07},
		Destination: dto.PointRequest{Lat: 35.08, Lon: -106.65},
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestListTrailersEndpoint(t *testing.T) {
	h := testRouter(t, routing.NewMockRouteProvider(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trailers", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res dto.ListTrailersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Trailers, len(refdata.Default().Trailers))
}
