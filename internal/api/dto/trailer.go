package dto

type TrailerResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	LegalLengthIn  float64 `json:"legal_length_in"`
	LegalWidthIn   float64 `json:"legal_width_in"`
	LegalHeightIn  float64 `json:"legal_height_in"`
	LegalWeightLbs float64 `json:"legal_weight_lbs"`
	Axles          int     `json:"axles"`
	MaxAxles       int     `json:"max_axles"`
	DeckHeightIn   float64 `json:"deck_height_in"`
}

type ListTrailersResponse struct {
	Trailers []TrailerResponse `json:"trailers"`
}
