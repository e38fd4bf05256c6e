package dto

type AnalyzeRequest struct {
	Text string `json:"text"`
}

type CargoItemResponse struct {
	Name      string  `json:"name"`
	LengthIn  float64 `json:"length_in"`
	WidthIn   float64 `json:"width_in"`
	HeightIn  float64 `json:"height_in"`
	WeightLbs float64 `json:"weight_lbs"`
	Quantity  int     `json:"quantity"`
}

type ParsedLoadResponse struct {
	LengthIn   float64             `json:"length_in"`
	WidthIn    float64             `json:"width_in"`
	HeightIn   float64             `json:"height_in"`
	WeightLbs  float64             `json:"weight_lbs"`
	Items      []CargoItemResponse `json:"items"`
	Confidence float64             `json:"confidence"`
}

type RecommendationResponse struct {
	TrailerID     string   `json:"trailer_id"`
	TrailerName   string   `json:"trailer_name"`
	Rank          int      `json:"rank"`
	Fit           string   `json:"fit"`
	OverLengthIn  float64  `json:"over_length_in"`
	OverWidthIn   float64  `json:"over_width_in"`
	OverHeightIn  float64  `json:"over_height_in"`
	OverWeightLbs float64  `json:"over_weight_lbs"`
	AxlesRequired int      `json:"axles_required"`
	Warnings      []string `json:"warnings"`
}

type AnalyzeResponse struct {
	Load            ParsedLoadResponse       `json:"load"`
	MissingFields   []string                 `json:"missing_fields"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	Warnings        []string                 `json:"warnings"`
}
