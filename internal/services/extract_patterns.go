package services

import (
	"regexp"
	"strconv"
	"strings"
)

// The extraction policy is deliberately expressed as an ordered rule list
// with declared specificity, reduced by a single tie-break function in
// bestDimensions, so precedence stays testable and extensible:
//
//   - a candidate's rank is 2*(explicit unit annotations) + 1 if the
//     triple carried L/W/H labels;
//   - higher rank wins; among equal ranks the later occurrence in the
//     text wins (emails tend to restate corrected figures further down);
//   - among equal rank and position, the earlier-listed rule wins.

const (
	numPat = `\d+(?:\.\d+)?`
	// One linear measurement: feet'inches" combos, a single number with
	// an optional unit token, or a bare number.
	measurePat = numPat + `\s*(?:'|"|ft\.?|feet|foot|in\.?|inches|inch)?` +
		`(?:\s*` + numPat + `\s*(?:"|in\.?|inches|inch))?`
	sepPat = `\s*(?:x|×|\*|by)\s*`
)

type dimensionRule struct {
	name    string
	re      *regexp.Regexp
	labeled bool
	// trailing means a single unit after the last number annotates the
	// whole triple ("40 x 8 x 9 ft").
	trailing bool
}

var dimensionRules = []dimensionRule{
	{
		name: "labeled triple",
		re: regexp.MustCompile(`(?i)\b(?:length|len|l)\s*[:=]?\s*(` + measurePat + `)\s*[,;]?\s*` +
			`(?:width|wid|w)\s*[:=]?\s*(` + measurePat + `)\s*[,;]?\s*` +
			`(?:height|hgt|h)\s*[:=]?\s*(` + measurePat + `)`),
		labeled: true,
	},
	{
		name: "trailing-unit triple",
		re: regexp.MustCompile(`(?i)\b(` + numPat + `)` + sepPat + `(` + numPat + `)` + sepPat +
			`(` + numPat + `)\s*('|"|ft\.?|feet|foot|in\.?|inches|inch)\b`),
		trailing: true,
	},
	{
		name: "separated triple",
		re: regexp.MustCompile(`(?i)\b(` + measurePat + `)` + sepPat + `(` + measurePat + `)` + sepPat +
			`(` + measurePat + `)`),
	},
}

var (
	feetInchesRe = regexp.MustCompile(`(?i)^(` + numPat + `)\s*(?:'|ft\.?|feet|foot)` +
		`(?:\s*(` + numPat + `)\s*(?:"|in\.?|inches|inch)?)?$`)
	inchesRe = regexp.MustCompile(`(?i)^(` + numPat + `)\s*(?:"|in\.?|inches|inch)$`)
	bareRe   = regexp.MustCompile(`^(` + numPat + `)$`)

	weightRe = regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})+|` + numPat + `)\s*` +
		`(lbs?\.?|pounds?|tonnes?|tons?|#)`)

	itemLineRe = regexp.MustCompile(`(?im)^\s*(?:(\d+)\s*(?:x|×)\s*)?` +
		`([a-z][a-z0-9 .&'/-]*?)\s*[,:]\s*` +
		`(` + measurePat + `)` + sepPat + `(` + measurePat + `)` + sepPat + `(` + measurePat + `)` +
		`[ \t]*(?:[,;][ \t]*(\d{1,3}(?:,\d{3})+|` + numPat + `)[ \t]*(lbs?\.?|pounds?|tonnes?|tons?)\b(?:[ \t]*(?:each|ea\.?))?)?` +
		`[ \t]*\.?[ \t]*$`)
)

// parseMeasurement normalizes one measurement expression to inches and
// reports whether it carried an explicit unit annotation. Bare numbers
// pass through under the inch convention.
func parseMeasurement(s string) (inches float64, explicit bool, ok bool) {
	s = strings.TrimSpace(s)

	if m := feetInchesRe.FindStringSubmatch(s); m != nil {
		ft, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false, false
		}
		in := 0.0
		if m[2] != "" {
			in, err = strconv.ParseFloat(m[2], 64)
			if err != nil {
				return 0, false, false
			}
		}
		return ft*12 + in, true, true
	}

	if m := inchesRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false, false
		}
		return v, true, true
	}

	if m := bareRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false, false
		}
		return v, false, true
	}

	return 0, false, false
}

// unitToInches scales a bare number by a unit token shared across a triple.
func unitToInches(v float64, unit string) float64 {
	switch strings.ToLower(strings.TrimRight(unit, ".")) {
	case "'", "ft", "feet", "foot":
		return v * 12
	default:
		return v
	}
}

// parseWeightLbs normalizes a weight expression to pounds.
// 1 ton = 2000 lb; 1 tonne = 2204.62 lb.
func parseWeightLbs(value, unit string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(strings.TrimRight(unit, ".")) {
	case "ton", "tons":
		return v * 2000, true
	case "tonne", "tonnes":
		return v * 2204.62, true
	default:
		return v, true
	}
}
