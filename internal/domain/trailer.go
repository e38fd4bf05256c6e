package domain

import "fmt"

// FitClass classifies how a trailer profile can carry a given load.
// The set is closed; ranking relies on the declared order (lower = better).
type FitClass int

const (
	FitLegal FitClass = iota
	FitPermitRequired
	FitEscortRequired
	FitInfeasible
)

func (c FitClass) String() string {
	switch c {
	case FitLegal:
		return "legal"
	case FitPermitRequired:
		return "permit_required"
	case FitEscortRequired:
		return "escort_required"
	case FitInfeasible:
		return "infeasible"
	default:
		return fmt.Sprintf("fit_class(%d)", int(c))
	}
}

// TrailerProfile is one truck/trailer configuration from the static
// catalog. Legal limits are the cargo dimensions the configuration may
// carry without any permit (height limits already account for deck
// height). Max limits are absolute: a load exceeding any of them cannot
// be carried by this configuration at all.
//
// Axle metadata estimates added-axle capacity: each axle beyond the base
// configuration, up to MaxAxles, legally carries PerAxleLbs more, so the
// absolute weight ceiling is LegalWeightLbs + (MaxAxles-Axles)*PerAxleLbs.
type TrailerProfile struct {
	ID   string
	Name string

	LegalLengthIn  float64
	LegalWidthIn   float64
	LegalHeightIn  float64
	LegalWeightLbs float64

	MaxLengthIn float64
	MaxWidthIn  float64
	MaxHeightIn float64

	Axles      int
	MaxAxles   int
	PerAxleLbs float64

	DeckHeightIn float64

	// Escort-trigger thresholds for this configuration; zero means the
	// engine default applies.
	EscortLengthIn float64
	EscortWidthIn  float64
	EscortHeightIn float64
}

// MaxWeightLbs is the absolute weight ceiling with every allowed axle added.
func (p TrailerProfile) MaxWeightLbs() float64 {
	extra := p.MaxAxles - p.Axles
	if extra < 0 {
		extra = 0
	}
	return p.LegalWeightLbs + float64(extra)*p.PerAxleLbs
}

// TruckRecommendation is one ranked matching result. Over* fields hold
// the measured excess beyond the profile's legal limit (0 when within
// limits), in the same units as the load record.
type TruckRecommendation struct {
	TrailerID   string
	TrailerName string
	Rank        int
	Fit         FitClass

	OverLengthIn  float64
	OverWidthIn   float64
	OverHeightIn  float64
	OverWeightLbs float64

	// AxlesRequired is the estimated axle count needed to carry the
	// load's weight legally (equal to the base axle count when the load
	// is not overweight).
	AxlesRequired int

	Warnings []string
}
