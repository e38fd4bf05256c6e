package refdata

import (
	"encoding/json"
	"fmt"
	"os"

	"freight-quote-service/internal/domain"
)

// File format for overriding reference tables. Sections are independent:
// a file that only declares fee_schedules keeps the built-in trailers and
// boundaries.
type tablesFile struct {
	Trailers      []trailerJSON         `json:"trailers"`
	FeeSchedules  []feeScheduleJSON     `json:"fee_schedules"`
	EscortRules   map[string]escortJSON `json:"escort_rules"`
	DefaultEscort *escortJSON           `json:"default_escort"`
	FallbackFee   *float64              `json:"fallback_fee"`
	Boundaries    []boundaryJSON        `json:"boundaries"`
}

type trailerJSON struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	LegalLengthIn  float64 `json:"legal_length_in"`
	LegalWidthIn   float64 `json:"legal_width_in"`
	LegalHeightIn  float64 `json:"legal_height_in"`
	LegalWeightLbs float64 `json:"legal_weight_lbs"`
	MaxLengthIn    float64 `json:"max_length_in"`
	MaxWidthIn     float64 `json:"max_width_in"`
	MaxHeightIn    float64 `json:"max_height_in"`
	Axles          int     `json:"axles"`
	MaxAxles       int     `json:"max_axles"`
	PerAxleLbs     float64 `json:"per_axle_lbs"`
	DeckHeightIn   float64 `json:"deck_height_in"`
	EscortLengthIn float64 `json:"escort_length_in"`
	EscortWidthIn  float64 `json:"escort_width_in"`
	EscortHeightIn float64 `json:"escort_height_in"`
}

type feeScheduleJSON struct {
	Jurisdiction string  `json:"jurisdiction"`
	Basis        string  `json:"basis"`
	FlatFee      float64 `json:"flat_fee"`
	PerMileRate  float64 `json:"per_mile_rate"`
	Tiers        []struct {
		MaxWeightLbs float64 `json:"max_weight_lbs"`
		Fee          float64 `json:"fee"`
	} `json:"tiers"`
}

type escortJSON struct {
	LengthIn    float64 `json:"length_in"`
	WidthIn     float64 `json:"width_in"`
	HeightIn    float64 `json:"height_in"`
	RearWidthIn float64 `json:"rear_width_in"`
	PerMileRate float64 `json:"per_mile_rate"`
}

type boundaryJSON struct {
	Jurisdiction string         `json:"jurisdiction"`
	Outer        [][2]float64   `json:"outer"`
	Holes        [][][2]float64 `json:"holes"`
}

// Load returns the built-in tables, with any sections present in the
// file at path replacing their defaults. An empty path means defaults
// only.
func Load(path string) (Tables, error) {
	tables := Default()
	if path == "" {
		return tables, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("load reference tables: read %q: %w", path, err)
	}

	var f tablesFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return Tables{}, fmt.Errorf("load reference tables: parse %q: %w", path, err)
	}

	if len(f.Trailers) > 0 {
		trailers := make([]domain.TrailerProfile, 0, len(f.Trailers))
		for _, t := range f.Trailers {
			if t.ID == "" {
				return Tables{}, fmt.Errorf("load reference tables: trailer with empty id")
			}
			trailers = append(trailers, domain.TrailerProfile{
				ID:             t.ID,
				Name:           t.Name,
				LegalLengthIn:  t.LegalLengthIn,
				LegalWidthIn:   t.LegalWidthIn,
				LegalHeightIn:  t.LegalHeightIn,
				LegalWeightLbs: t.LegalWeightLbs,
				MaxLengthIn:    t.MaxLengthIn,
				MaxWidthIn:     t.MaxWidthIn,
				MaxHeightIn:    t.MaxHeightIn,
				Axles:          t.Axles,
				MaxAxles:       t.MaxAxles,
				PerAxleLbs:     t.PerAxleLbs,
				DeckHeightIn:   t.DeckHeightIn,
				EscortLengthIn: t.EscortLengthIn,
				EscortWidthIn:  t.EscortWidthIn,
				EscortHeightIn: t.EscortHeightIn,
			})
		}
		tables.Trailers = trailers
	}

	if len(f.FeeSchedules) > 0 {
		fees := make(map[string]domain.FeeSchedule, len(f.FeeSchedules))
		for _, s := range f.FeeSchedules {
			basis, err := parseBasis(s.Basis)
			if err != nil {
				return Tables{}, fmt.Errorf("load reference tables: jurisdiction %q: %w", s.Jurisdiction, err)
			}
			schedule := domain.FeeSchedule{
				Jurisdiction: s.Jurisdiction,
				Basis:        basis,
				FlatFee:      s.FlatFee,
				PerMileRate:  s.PerMileRate,
			}
			for _, tier := range s.Tiers {
				schedule.Tiers = append(schedule.Tiers, domain.WeightTier{
					MaxWeightLbs: tier.MaxWeightLbs,
					Fee:          tier.Fee,
				})
			}
			fees[s.Jurisdiction] = schedule
		}
		tables.Pricing.Fees = fees
	}

	if len(f.EscortRules) > 0 {
		escorts := make(map[string]domain.EscortRule, len(f.EscortRules))
		for code, e := range f.EscortRules {
			escorts[code] = e.toDomain()
		}
		tables.Pricing.Escorts = escorts
	}
	if f.DefaultEscort != nil {
		tables.Pricing.DefaultEscort = f.DefaultEscort.toDomain()
	}
	if f.FallbackFee != nil {
		tables.Pricing.FallbackFee = *f.FallbackFee
	}

	if len(f.Boundaries) > 0 {
		boundaries := make([]domain.Boundary, 0, len(f.Boundaries))
		for _, b := range f.Boundaries {
			if len(b.Outer) < 3 {
				return Tables{}, fmt.Errorf("load reference tables: boundary %q needs at least 3 outer vertices", b.Jurisdiction)
			}
			bd := domain.Boundary{Jurisdiction: b.Jurisdiction, Outer: toPoints(b.Outer)}
			for _, hole := range b.Holes {
				bd.Holes = append(bd.Holes, toPoints(hole))
			}
			boundaries = append(boundaries, bd)
		}
		tables.Boundaries = boundaries
	}

	return tables, nil
}

func (e escortJSON) toDomain() domain.EscortRule {
	return domain.EscortRule{
		LengthIn:    e.LengthIn,
		WidthIn:     e.WidthIn,
		HeightIn:    e.HeightIn,
		RearWidthIn: e.RearWidthIn,
		PerMileRate: e.PerMileRate,
	}
}

func parseBasis(s string) (domain.FeeBasis, error) {
	switch s {
	case "", "flat":
		return domain.FeeFlat, nil
	case "per_mile":
		return domain.FeePerMile, nil
	case "weight_tiered":
		return domain.FeeWeightTiered, nil
	default:
		return 0, fmt.Errorf("unknown fee basis %q", s)
	}
}

// Pairs are [lat, lon].
func toPoints(pairs [][2]float64) []domain.GeoPoint {
	pts := make([]domain.GeoPoint, 0, len(pairs))
	for _, p := range pairs {
		pts = append(pts, domain.GeoPoint{Lat: p[0], Lon: p[1]})
	}
	return pts
}
