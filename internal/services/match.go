package services

import (
	"fmt"
	"math"
	"sort"

	"freight-quote-service/internal/domain"
)

// Engine-default escort-trigger thresholds, applied when a trailer
// profile does not declare its own: width over 12 ft, height over 14'6",
// length over 80 ft.
const (
	defaultEscortWidthIn  = 144
	defaultEscortHeightIn = 174
	defaultEscortLengthIn = 960
)

// Weight excess is folded into the ranking tie-break at 1000 lb per
// inch-equivalent so dimensional and weight excesses stay comparable.
const weightExcessScale = 1000.0

// Match evaluates the load against every profile in the catalog and
// returns recommendations sorted best-first: legal fits before
// permit-required before escort-required, and lower total excess within a
// tier. Profiles that cannot carry the load at all are excluded, not
// ranked last. An all-zero load is legal for every profile; suppressing
// that display when extraction failed is the orchestrator's job.
func Match(load domain.ParsedLoad, catalog []domain.TrailerProfile) []domain.TruckRecommendation {
	recs := make([]domain.TruckRecommendation, 0, len(catalog))

	for _, p := range catalog {
		rec, feasible := evaluateProfile(load, p)
		if !feasible {
			continue
		}
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Fit != recs[j].Fit {
			return recs[i].Fit < recs[j].Fit
		}
		ei, ej := totalExcess(recs[i]), totalExcess(recs[j])
		if ei != ej {
			return ei < ej
		}
		return recs[i].TrailerID < recs[j].TrailerID
	})

	for i := range recs {
		recs[i].Rank = i + 1
	}

	return recs
}

func evaluateProfile(load domain.ParsedLoad, p domain.TrailerProfile) (domain.TruckRecommendation, bool) {
	if load.LengthIn > p.MaxLengthIn ||
		load.WidthIn > p.MaxWidthIn ||
		load.HeightIn > p.MaxHeightIn ||
		load.WeightLbs > p.MaxWeightLbs() {
		return domain.TruckRecommendation{}, false
	}

	rec := domain.TruckRecommendation{
		TrailerID:     p.ID,
		TrailerName:   p.Name,
		OverLengthIn:  math.Max(0, load.LengthIn-p.LegalLengthIn),
		OverWidthIn:   math.Max(0, load.WidthIn-p.LegalWidthIn),
		OverHeightIn:  math.Max(0, load.HeightIn-p.LegalHeightIn),
		OverWeightLbs: math.Max(0, load.WeightLbs-p.LegalWeightLbs),
		AxlesRequired: p.Axles,
	}

	rec.Fit = classify(load, p, rec)

	if rec.OverWeightLbs > 0 && p.PerAxleLbs > 0 {
		added := int(math.Ceil(rec.OverWeightLbs / p.PerAxleLbs))
		rec.AxlesRequired = p.Axles + added
		rec.Warnings = append(rec.Warnings,
			fmt.Sprintf("over-weight by %.0f lbs; estimated %d additional axle(s) required", rec.OverWeightLbs, added))
	}
	if rec.OverLengthIn > 0 {
		rec.Warnings = append(rec.Warnings, fmt.Sprintf("over-length by %.1f in", rec.OverLengthIn))
	}
	if rec.OverWidthIn > 0 {
		rec.Warnings = append(rec.Warnings, fmt.Sprintf("over-width by %.1f in", rec.OverWidthIn))
	}
	if rec.OverHeightIn > 0 {
		rec.Warnings = append(rec.Warnings, fmt.Sprintf("over-height by %.1f in", rec.OverHeightIn))
	}

	return rec, true
}

func classify(load domain.ParsedLoad, p domain.TrailerProfile, rec domain.TruckRecommendation) domain.FitClass {
	escortL := p.EscortLengthIn
	if escortL == 0 {
		escortL = defaultEscortLengthIn
	}
	escortW := p.EscortWidthIn
	if escortW == 0 {
		escortW = defaultEscortWidthIn
	}
	escortH := p.EscortHeightIn
	if escortH == 0 {
		escortH = defaultEscortHeightIn
	}

	switch {
	case load.LengthIn > escortL || load.WidthIn > escortW || load.HeightIn > escortH:
		return domain.FitEscortRequired
	case rec.OverLengthIn > 0 || rec.OverWidthIn > 0 || rec.OverHeightIn > 0 || rec.OverWeightLbs > 0:
		return domain.FitPermitRequired
	default:
		return domain.FitLegal
	}
}

func totalExcess(r domain.TruckRecommendation) float64 {
	return r.OverLengthIn + r.OverWidthIn + r.OverHeightIn + r.OverWeightLbs/weightExcessScale
}
