package domain

// A single physical piece of cargo extracted from a freight request.
// Position fields are placement hints consumed by the external load
// visualizer; the decision pipeline ignores them.
type CargoItem struct {
	Name      string
	LengthIn  float64
	WidthIn   float64
	HeightIn  float64
	WeightLbs float64
	Quantity  int
	PosXIn    float64
	PosYIn    float64
	PosZIn    float64
}

// Structured result of extracting a freight request from free text.
// Dimensions are normalized to inches and weight to pounds; a field the
// extractor could not find is 0, never an error. Confidence is a
// deterministic [0,1] score reflecting how many of the four required
// fields (length, width, height, weight) were matched.
type ParsedLoad struct {
	LengthIn   float64
	WidthIn    float64
	HeightIn   float64
	WeightLbs  float64
	Items      []CargoItem
	Confidence float64
}

// Reports whether all four required fields were extracted.
func (l ParsedLoad) Complete() bool {
	return l.LengthIn > 0 && l.WidthIn > 0 && l.HeightIn > 0 && l.WeightLbs > 0
}
