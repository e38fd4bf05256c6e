package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSimpleDimsAndWeight(t *testing.T) {
	load := Extract("48 x 8 x 9, 42000 lbs")

	assert.Equal(t, 48.0, load.LengthIn)
	assert.Equal(t, 8.0, load.WidthIn)
	assert.Equal(t, 9.0, load.HeightIn)
	assert.Equal(t, 42000.0, load.WeightLbs)
	assert.Equal(t, 1.0, load.Confidence)
}

func TestExtractNoNumericTokens(t *testing.T) {
	load := Extract("hello, can you give me a quote for moving my machine next week?")

	assert.Equal(t, 0.0, load.LengthIn)
	assert.Equal(t, 0.0, load.WidthIn)
	assert.Equal(t, 0.0, load.HeightIn)
	assert.Equal(t, 0.0, load.WeightLbs)
	assert.Equal(t, 0.0, load.Confidence)
	assert.Empty(t, load.Items)
}

func TestExtractEmptyInput(t *testing.T) {
	load := Extract("")
	assert.Equal(t, 0.0, load.Confidence)
}

func TestExtractFeetInchesCombo(t *testing.T) {
	load := Extract("the piece measures 12'6\" x 8'6\" x 9'")

	assert.Equal(t, 150.0, load.LengthIn)
	assert.Equal(t, 102.0, load.WidthIn)
	assert.Equal(t, 108.0, load.HeightIn)
}

func TestExtractFeetUnits(t *testing.T) {
	load := Extract("dims are 45 ft x 8 ft x 9 ft, weight 42000 lbs")

	assert.Equal(t, 540.0, load.LengthIn)
	assert.Equal(t, 96.0, load.WidthIn)
	assert.Equal(t, 108.0, load.HeightIn)
}

func TestExtractTrailingUnitAppliesToAllThree(t *testing.T) {
	load := Extract("approx 40 x 8 x 9 ft")

	assert.Equal(t, 480.0, load.LengthIn)
	assert.Equal(t, 96.0, load.WidthIn)
	assert.Equal(t, 108.0, load.HeightIn)
}

func TestExtractExplicitUnitsOutrankLaterBareNumbers(t *testing.T) {
	// The united triple comes first but must still win over the bare one.
	text := "load is 40' x 8'6\" x 9' on a trailer rated 53 x 102 x 110"
	load := Extract(text)

	assert.Equal(t, 480.0, load.LengthIn)
	assert.Equal(t, 102.0, load.WidthIn)
	assert.Equal(t, 108.0, load.HeightIn)
}

func TestExtractLaterOccurrenceWinsAmongEquals(t *testing.T) {
	text := "original spec was 40 x 8 x 9 but the corrected size is 45 x 8 x 10"
	load := Extract(text)

	assert.Equal(t, 45.0, load.LengthIn)
	assert.Equal(t, 8.0, load.WidthIn)
	assert.Equal(t, 10.0, load.HeightIn)
}

func TestExtractLabeledDimensions(t *testing.T) {
	load := Extract("specs: L 40' W 8' H 9'")

	assert.Equal(t, 480.0, load.LengthIn)
	assert.Equal(t, 96.0, load.WidthIn)
	assert.Equal(t, 108.0, load.HeightIn)
}

func TestExtractWeightTons(t *testing.T) {
	load := Extract("one transformer, roughly 21 tons")
	assert.Equal(t, 42000.0, load.WeightLbs)
}

func TestExtractWeightWithCommas(t *testing.T) {
	load := Extract("gross weight 42,000 lbs")
	assert.Equal(t, 42000.0, load.WeightLbs)
}

func TestExtractLastWeightWins(t *testing.T) {
	load := Extract("about 40000 lbs -- correction, scale ticket says 44,500 lbs")
	assert.Equal(t, 44500.0, load.WeightLbs)
}

func TestExtractItemLines(t *testing.T) {
	text := strings.Join([]string{
		"Hi, we need the following moved:",
		"2 x steel coil, 72 x 72 x 60, 15000 lbs each",
		"1 x crate, 48 x 40 x 40, 800 lbs",
		"excavator: 28' x 10' x 10'6\", 52000 lbs",
		"",
		"Overall 30' x 10' x 10'6\", total 83,600 lbs",
	}, "\n")

	load := Extract(text)

	require.Len(t, load.Items, 3)

	assert.Equal(t, "steel coil", load.Items[0].Name)
	assert.Equal(t, 2, load.Items[0].Quantity)
	assert.Equal(t, 72.0, load.Items[0].LengthIn)
	assert.Equal(t, 15000.0, load.Items[0].WeightLbs)

	assert.Equal(t, "crate", load.Items[1].Name)
	assert.Equal(t, 1, load.Items[1].Quantity)

	assert.Equal(t, "excavator", load.Items[2].Name)
	assert.Equal(t, 1, load.Items[2].Quantity, "quantity defaults to 1")
	assert.Equal(t, 336.0, load.Items[2].LengthIn)
	assert.Equal(t, 126.0, load.Items[2].HeightIn)

	// The overall line carries the most recent united triple.
	assert.Equal(t, 360.0, load.LengthIn)
	assert.Equal(t, 120.0, load.WidthIn)
	assert.Equal(t, 126.0, load.HeightIn)
	assert.Equal(t, 83600.0, load.WeightLbs)
	assert.Equal(t, 1.0, load.Confidence)
}

func TestExtractConfidencePartialFields(t *testing.T) {
	// Dimensions but no weight: 3 of 4 required fields.
	load := Extract("pallet 48 x 40 x 40")
	assert.InDelta(t, 0.75, load.Confidence, 1e-9)

	// Weight only: 1 of 4.
	load = Extract("it weighs 5000 lbs, dimensions to follow")
	assert.InDelta(t, 0.25, load.Confidence, 1e-9)
}

func TestExtractConfidenceBounds(t *testing.T) {
	inputs := []string{
		"",
		"x x x",
		"12'6\"",
		"48 x 8 x 9, 42000 lbs",
		strings.Repeat("9 x 9 x 9 ", 500),
		"\x00\xff garbage \t\n 40 x 8",
	}

	for _, in := range inputs {
		load := Extract(in)
		assert.GreaterOrEqual(t, load.Confidence, 0.0)
		assert.LessOrEqual(t, load.Confidence, 1.0)
	}
}

func TestValidateParsedLoad(t *testing.T) {
	missing := ValidateParsedLoad(Extract(""))
	assert.Equal(t, []string{"length", "width", "height", "weight"}, missing)

	missing = ValidateParsedLoad(Extract("48 x 8 x 9, 42000 lbs"))
	assert.Empty(t, missing)

	missing = ValidateParsedLoad(Extract("48 x 8 x 9"))
	assert.Equal(t, []string{"weight"}, missing)
}
