package domain

// CargoDims are the overall cargo dimensions fed to the permit engine.
type CargoDims struct {
	LengthIn       float64
	WidthIn        float64
	HeightIn       float64
	GrossWeightLbs float64
}

// FeeBasis selects how a jurisdiction's permit fee is computed.
type FeeBasis int

const (
	FeeFlat FeeBasis = iota
	FeePerMile
	FeeWeightTiered
)

// WeightTier maps a gross-weight bracket (inclusive upper bound) to a fee.
type WeightTier struct {
	MaxWeightLbs float64
	Fee          float64
}

// FeeSchedule is one jurisdiction's permit fee rule. FlatFee applies as a
// base for every basis; PerMileRate applies per traveled mile under
// FeePerMile; Tiers apply under FeeWeightTiered (a load heavier than the
// last tier pays the last tier's fee).
type FeeSchedule struct {
	Jurisdiction string
	Basis        FeeBasis
	FlatFee      float64
	PerMileRate  float64
	Tiers        []WeightTier
}

// EscortRule holds one jurisdiction's escort thresholds and pricing.
// Exceeding one threshold requires a front escort; exceeding two or
// more, or exceeding RearWidthIn, requires front and rear escorts.
type EscortRule struct {
	LengthIn    float64
	WidthIn     float64
	HeightIn    float64
	RearWidthIn float64
	PerMileRate float64
}

// PricingTables is the static reference data the permit engine runs
// against. Jurisdictions absent from Fees pay FallbackFee; jurisdictions
// absent from Escorts use DefaultEscort.
type PricingTables struct {
	Fees          map[string]FeeSchedule
	Escorts       map[string]EscortRule
	DefaultEscort EscortRule
	FallbackFee   float64
}

// JurisdictionCost is the permit and escort cost for one segment.
type JurisdictionCost struct {
	Jurisdiction   string
	DistanceMi     float64
	PermitFee      float64
	EscortRequired bool
	EscortCount    int
	EscortCost     float64
	FallbackFee    bool
}

// PermitBreakdown aggregates per-jurisdiction costs for a route.
// TotalPermitFees and TotalEscortCost always equal the sums of the
// per-jurisdiction values.
type PermitBreakdown struct {
	Jurisdictions   []JurisdictionCost
	TotalPermitFees float64
	TotalEscortCost float64
	Warnings        []string
}
