package services

import (
	"fmt"

	"freight-quote-service/internal/domain"
)

// Price computes the permit fee and escort cost for every jurisdiction
// segment. Jurisdictions missing from the fee table pay the documented
// fallback fee and raise a warning; the breakdown never aborts for valid
// numeric input. Aggregate totals always equal the per-jurisdiction sums.
func Price(segments []domain.JurisdictionSegment, cargo domain.CargoDims, tables domain.PricingTables) domain.PermitBreakdown {
	breakdown := domain.PermitBreakdown{
		Jurisdictions: make([]domain.JurisdictionCost, 0, len(segments)),
	}

	for _, seg := range segments {
		cost := domain.JurisdictionCost{
			Jurisdiction: seg.Jurisdiction,
			DistanceMi:   seg.DistanceMi,
		}

		if schedule, ok := tables.Fees[seg.Jurisdiction]; ok {
			cost.PermitFee = permitFee(schedule, seg.DistanceMi, cargo)
		} else {
			cost.PermitFee = tables.FallbackFee
			cost.FallbackFee = true
			breakdown.Warnings = append(breakdown.Warnings,
				fmt.Sprintf("no fee schedule for jurisdiction %s; applied fallback fee %.2f", seg.Jurisdiction, tables.FallbackFee))
		}

		rule, ok := tables.Escorts[seg.Jurisdiction]
		if !ok {
			rule = tables.DefaultEscort
		}
		cost.EscortCount = escortCount(rule, cargo)
		cost.EscortRequired = cost.EscortCount > 0
		cost.EscortCost = float64(cost.EscortCount) * rule.PerMileRate * seg.DistanceMi

		breakdown.Jurisdictions = append(breakdown.Jurisdictions, cost)
		breakdown.TotalPermitFees += cost.PermitFee
		breakdown.TotalEscortCost += cost.EscortCost
	}

	return breakdown
}

func permitFee(s domain.FeeSchedule, distanceMi float64, cargo domain.CargoDims) float64 {
	switch s.Basis {
	case domain.FeePerMile:
		return s.FlatFee + s.PerMileRate*distanceMi
	case domain.FeeWeightTiered:
		for _, tier := range s.Tiers {
			if cargo.GrossWeightLbs <= tier.MaxWeightLbs {
				return s.FlatFee + tier.Fee
			}
		}
		if len(s.Tiers) > 0 {
			return s.FlatFee + s.Tiers[len(s.Tiers)-1].Fee
		}
		return s.FlatFee
	default:
		return s.FlatFee
	}
}

// escortCount applies one rule: a single threshold exceeded requires a
// front escort; two or more, or width beyond the rear-escort width,
// requires front and rear.
func escortCount(rule domain.EscortRule, cargo domain.CargoDims) int {
	over := 0
	if rule.LengthIn > 0 && cargo.LengthIn > rule.LengthIn {
		over++
	}
	if rule.WidthIn > 0 && cargo.WidthIn > rule.WidthIn {
		over++
	}
	if rule.HeightIn > 0 && cargo.HeightIn > rule.HeightIn {
		over++
	}

	switch {
	case over == 0:
		return 0
	case over >= 2 || (rule.RearWidthIn > 0 && cargo.WidthIn > rule.RearWidthIn):
		return 2
	default:
		return 1
	}
}
