package refdata

import "freight-quote-service/internal/domain"

// Tables bundles every static reference table the engines run against.
// All of it is immutable after load; engines receive it by injection so
// substitute tables need no code changes.
type Tables struct {
	Trailers   []domain.TrailerProfile
	Pricing    domain.PricingTables
	Boundaries []domain.Boundary
}

// Default returns the built-in reference tables. Fee amounts and escort
// rates are representative planning figures, not a regulatory source of
// truth; production deployments override them with a tables file.
func Default() Tables {
	return Tables{
		Trailers:   defaultTrailers(),
		Pricing:    defaultPricing(),
		Boundaries: defaultBoundaries(),
	}
}

// Legal cargo height limits are derived from the 13'6" overall height
// limit minus deck height; widths from the 102 in federal limit.
func defaultTrailers() []domain.TrailerProfile {
	return []domain.TrailerProfile{
		{
			ID:   "flatbed-48",
			Name: "48' Flatbed",

			LegalLengthIn:  576,
			LegalWidthIn:   102,
			LegalHeightIn:  102,
			LegalWeightLbs: 48000,

			MaxLengthIn: 720,
			MaxWidthIn:  192,
			MaxHeightIn: 126,

			Axles:        5,
			MaxAxles:     6,
			PerAxleLbs:   10000,
			DeckHeightIn: 60,
		},
		{
			ID:   "stepdeck-48",
			Name: "48' Step Deck",

			LegalLengthIn:  576,
			LegalWidthIn:   102,
			LegalHeightIn:  120,
			LegalWeightLbs: 48000,

			MaxLengthIn: 720,
			MaxWidthIn:  192,
			MaxHeightIn: 144,

			Axles:        5,
			MaxAxles:     6,
			PerAxleLbs:   10000,
			DeckHeightIn: 42,
		},
		{
			ID:   "doubledrop-48",
			Name: "48' Double Drop",

			LegalLengthIn:  348,
			LegalWidthIn:   102,
			LegalHeightIn:  138,
			LegalWeightLbs: 45000,

			MaxLengthIn: 420,
			MaxWidthIn:  192,
			MaxHeightIn: 162,

			Axles:        5,
			MaxAxles:     7,
			PerAxleLbs:   10000,
			DeckHeightIn: 24,
		},
		{
			ID:   "rgn-3axle",
			Name: "RGN 3-Axle Lowboy",

			LegalLengthIn:  348,
			LegalWidthIn:   102,
			LegalHeightIn:  144,
			LegalWeightLbs: 44000,

			MaxLengthIn: 480,
			MaxWidthIn:  216,
			MaxHeightIn: 168,

			Axles:        6,
			MaxAxles:     9,
			PerAxleLbs:   12000,
			DeckHeightIn: 18,
		},
		{
			ID:   "rgn-heavy",
			Name: "RGN Heavy-Haul (multi-axle)",

			LegalLengthIn:  360,
			LegalWidthIn:   102,
			LegalHeightIn:  144,
			LegalWeightLbs: 80000,

			MaxLengthIn: 600,
			MaxWidthIn:  240,
			MaxHeightIn: 180,

			Axles:        9,
			MaxAxles:     13,
			PerAxleLbs:   13000,
			DeckHeightIn: 18,

			// Heavy-haul moves trigger escorts earlier in practice.
			EscortWidthIn:  132,
			EscortHeightIn: 168,
		},
	}
}

func defaultPricing() domain.PricingTables {
	return domain.PricingTables{
		Fees: map[string]domain.FeeSchedule{
			"AZ": {Jurisdiction: "AZ", Basis: domain.FeeFlat, FlatFee: 75},
			"CA": {Jurisdiction: "CA", Basis: domain.FeeFlat, FlatFee: 16},
			"NV": {Jurisdiction: "NV", Basis: domain.FeeFlat, FlatFee: 60},
			"UT": {Jurisdiction: "UT", Basis: domain.FeeFlat, FlatFee: 60},
			"NM": {Jurisdiction: "NM", Basis: domain.FeePerMile, FlatFee: 25, PerMileRate: 0.25},
			"CO": {Jurisdiction: "CO", Basis: domain.FeePerMile, FlatFee: 15, PerMileRate: 0.30},
			"TX": {
				Jurisdiction: "TX",
				Basis:        domain.FeeWeightTiered,
				FlatFee:      60,
				Tiers: []domain.WeightTier{
					{MaxWeightLbs: 120000, Fee: 0},
					{MaxWeightLbs: 160000, Fee: 75},
					{MaxWeightLbs: 200000, Fee: 210},
				},
			},
		},
		Escorts: map[string]domain.EscortRule{
			// AZ requires escorts at 11 ft width; CA at 12 ft with a rear
			// escort beyond 14 ft.
			"AZ": {WidthIn: 132, HeightIn: 174, LengthIn: 960, RearWidthIn: 168, PerMileRate: 1.75},
			"CA": {WidthIn: 144, HeightIn: 180, LengthIn: 1020, RearWidthIn: 168, PerMileRate: 2.00},
		},
		DefaultEscort: domain.EscortRule{
			WidthIn:     144,
			HeightIn:    174,
			LengthIn:    960,
			RearWidthIn: 168,
			PerMileRate: 1.75,
		},
		FallbackFee: 75,
	}
}
