package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/geo"
)

func TestDefaultTablesAreConsistent(t *testing.T) {
	tables := Default()

	require.NotEmpty(t, tables.Trailers)
	for _, tr := range tables.Trailers {
		assert.NotEmpty(t, tr.ID)
		assert.Greater(t, tr.LegalWeightLbs, 0.0, "trailer %s", tr.ID)
		assert.GreaterOrEqual(t, tr.MaxLengthIn, tr.LegalLengthIn, "trailer %s", tr.ID)
		assert.GreaterOrEqual(t, tr.MaxWidthIn, tr.LegalWidthIn, "trailer %s", tr.ID)
		assert.GreaterOrEqual(t, tr.MaxHeightIn, tr.LegalHeightIn, "trailer %s", tr.ID)
		assert.GreaterOrEqual(t, tr.MaxAxles, tr.Axles, "trailer %s", tr.ID)
	}

	require.NotEmpty(t, tables.Pricing.Fees)
	assert.Greater(t, tables.Pricing.FallbackFee, 0.0)
	assert.Greater(t, tables.Pricing.DefaultEscort.PerMileRate, 0.0)

	require.NotEmpty(t, tables.Boundaries)
	for _, b := range tables.Boundaries {
		assert.GreaterOrEqual(t, len(b.Outer), 3, "boundary %s", b.Jurisdiction)
	}
}

func TestDefaultBoundariesLocateKnownCities(t *testing.T) {
	ix := geo.NewIndex(Default().Boundaries)

	cases := []struct {
		name string
		p    domain.GeoPoint
		want string
	}{
		{"Phoenix", domain.GeoPoint{Lat: 33.45, Lon: -112.07}, "AZ"},
		{"Albuquerque", domain.GeoPoint{Lat: 35.08, Lon: -106.65}, "NM"},
		{"Salt Lake City", domain.GeoPoint{Lat: 40.76, Lon: -111.89}, "UT"},
		{"Denver", domain.GeoPoint{Lat: 39.74, Lon: -104.99}, "CO"},
		{"Las Vegas", domain.GeoPoint{Lat: 36.17, Lon: -115.14}, "NV"},
		{"Dallas", domain.GeoPoint{Lat: 32.78, Lon: -96.80}, "TX"},
	}

	for _, tc := range cases {
		code, ok := ix.Locate(tc.p)
		require.True(t, ok, tc.name)
		assert.Equal(t, tc.want, code, tc.name)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	tables, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), tables)
}

func TestLoadOverridesOnlyPresentSections(t *testing.T) {
	content := `{
		"fee_schedules": [
			{"jurisdiction": "AZ", "basis": "per_mile", "flat_fee": 10, "per_mile_rate": 0.5}
		],
		"fallback_fee": 120
	}`

	path := filepath.Join(t.TempDir(), "tables.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	tables, err := Load(path)
	require.NoError(t, err)

	// Overridden sections replaced.
	require.Len(t, tables.Pricing.Fees, 1)
	az := tables.Pricing.Fees["AZ"]
	assert.Equal(t, domain.FeePerMile, az.Basis)
	assert.Equal(t, 120.0, tables.Pricing.FallbackFee)

	// Untouched sections keep the defaults.
	assert.Equal(t, Default().Trailers, tables.Trailers)
	assert.Equal(t, Default().Boundaries, tables.Boundaries)
	assert.Equal(t, Default().Pricing.DefaultEscort, tables.Pricing.DefaultEscort)
}

func TestLoadRejectsBadBasis(t *testing.T) {
	content := `{"fee_schedules": [{"jurisdiction": "AZ", "basis": "quadratic"}]}`
	path := filepath.Join(t.TempDir(), "tables.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsDegenerateBoundary(t *testing.T) {
	content := `{"boundaries": [{"jurisdiction": "AZ", "outer": [[31, -114], [37, -114]]}]}`
	path := filepath.Join(t.TempDir(), "tables.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
