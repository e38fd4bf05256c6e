package services

import (
	"strconv"

	"freight-quote-service/internal/domain"
)

// Confidence bonus applied when itemized cargo lines were also matched.
const itemBonus = 0.1

type dimCandidate struct {
	lengthIn float64
	widthIn  float64
	heightIn float64
	rank     int
	pos      int
}

// Extract scans free text for load dimensions, weight, and itemized
// cargo. It never fails: fields that cannot be found are 0 and an
// all-zero load with confidence 0 is a valid result for garbage input.
func Extract(text string) domain.ParsedLoad {
	load := domain.ParsedLoad{}

	if c, ok := bestDimensions(text); ok {
		load.LengthIn = c.lengthIn
		load.WidthIn = c.widthIn
		load.HeightIn = c.heightIn
	}

	if w, ok := extractWeight(text); ok {
		load.WeightLbs = w
	}

	load.Items = extractItems(text)

	matched := 0
	for _, v := range []float64{load.LengthIn, load.WidthIn, load.HeightIn, load.WeightLbs} {
		if v > 0 {
			matched++
		}
	}

	conf := float64(matched) / 4
	// The bonus never fabricates confidence when nothing matched.
	if matched > 0 && len(load.Items) > 0 {
		conf += itemBonus
	}
	if conf > 1 {
		conf = 1
	}
	load.Confidence = conf

	return load
}

// bestDimensions evaluates every dimension rule over the whole text and
// reduces the candidates with the documented tie-break: highest rank
// first, later text position among equals, earlier rule among exact ties.
func bestDimensions(text string) (dimCandidate, bool) {
	var best dimCandidate
	found := false

	for _, rule := range dimensionRules {
		for _, idx := range rule.re.FindAllStringSubmatchIndex(text, -1) {
			c, ok := candidateFromMatch(rule, text, idx)
			if !ok {
				continue
			}
			if !found || c.rank > best.rank || (c.rank == best.rank && c.pos > best.pos) {
				best = c
				found = true
			}
		}
	}

	return best, found
}

func candidateFromMatch(rule dimensionRule, text string, idx []int) (dimCandidate, bool) {
	group := func(n int) string {
		lo, hi := idx[2*n], idx[2*n+1]
		if lo < 0 {
			return ""
		}
		return text[lo:hi]
	}

	c := dimCandidate{pos: idx[0]}

	if rule.trailing {
		unit := group(4)
		dims := [3]float64{}
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(group(i+1), 64)
			if err != nil {
				return dimCandidate{}, false
			}
			dims[i] = unitToInches(v, unit)
		}
		c.lengthIn, c.widthIn, c.heightIn = dims[0], dims[1], dims[2]
		// One annotation covers all three measurements.
		c.rank = 2 * 3
		return c, true
	}

	units := 0
	dims := [3]float64{}
	for i := 0; i < 3; i++ {
		v, explicit, ok := parseMeasurement(group(i + 1))
		if !ok {
			return dimCandidate{}, false
		}
		if explicit {
			units++
		}
		dims[i] = v
	}
	c.lengthIn, c.widthIn, c.heightIn = dims[0], dims[1], dims[2]

	c.rank = 2 * units
	if rule.labeled {
		c.rank++
	}
	return c, true
}

// extractWeight returns the last weight expression in the text,
// normalized to pounds. Restated figures later in an email override
// earlier ones, mirroring the dimension policy.
func extractWeight(text string) (float64, bool) {
	matches := weightRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}
	m := matches[len(matches)-1]
	return parseWeightLbs(m[1], m[2])
}

// extractItems collects itemized cargo lines of the form
// "qty x name, L x W x H, weight". Quantity defaults to 1.
func extractItems(text string) []domain.CargoItem {
	var items []domain.CargoItem

	for _, m := range itemLineRe.FindAllStringSubmatch(text, -1) {
		// A quantity or a weight must be present; a lone "label: L x W x H"
		// line is a dimension statement, not an itemized piece.
		if m[1] == "" && m[6] == "" {
			continue
		}

		item := domain.CargoItem{Name: m[2], Quantity: 1}

		if m[1] != "" {
			q, err := strconv.Atoi(m[1])
			if err != nil || q < 1 {
				continue
			}
			item.Quantity = q
		}

		dims := [3]float64{}
		ok := true
		for i := 0; i < 3; i++ {
			v, _, parsed := parseMeasurement(m[3+i])
			if !parsed {
				ok = false
				break
			}
			dims[i] = v
		}
		if !ok {
			continue
		}
		item.LengthIn, item.WidthIn, item.HeightIn = dims[0], dims[1], dims[2]

		if m[6] != "" {
			if w, parsed := parseWeightLbs(m[6], m[7]); parsed {
				item.WeightLbs = w
			}
		}

		items = append(items, item)
	}

	return items
}

// ValidateParsedLoad returns the required fields the extractor did not
// find. An empty result means the load is usable for matching.
func ValidateParsedLoad(load domain.ParsedLoad) []string {
	var missing []string
	if load.LengthIn <= 0 {
		missing = append(missing, "length")
	}
	if load.WidthIn <= 0 {
		missing = append(missing, "width")
	}
	if load.HeightIn <= 0 {
		missing = append(missing, "height")
	}
	if load.WeightLbs <= 0 {
		missing = append(missing, "weight")
	}
	return missing
}
