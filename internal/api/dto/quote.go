package dto

type PointRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type CargoDimsRequest struct {
	LengthIn       float64 `json:"length_in"`
	WidthIn        float64 `json:"width_in"`
	HeightIn       float64 `json:"height_in"`
	GrossWeightLbs float64 `json:"gross_weight_lbs"`
}

type QuoteRequest struct {
	Origin      PointRequest     `json:"origin"`
	Destination PointRequest     `json:"destination"`
	Cargo       CargoDimsRequest `json:"cargo"`
}

type SegmentResponse struct {
	Jurisdiction string  `json:"jurisdiction"`
	DistanceMi   float64 `json:"distance_mi"`
}

type JurisdictionCostResponse struct {
	Jurisdiction   string  `json:"jurisdiction"`
	DistanceMi     float64 `json:"distance_mi"`
	PermitFee      float64 `json:"permit_fee"`
	EscortRequired bool    `json:"escort_required"`
	EscortCount    int     `json:"escort_count"`
	EscortCost     float64 `json:"escort_cost"`
	FallbackFee    bool    `json:"fallback_fee"`
}

type QuoteResponse struct {
	QuoteID         string                     `json:"quote_id"`
	TotalDistanceMi float64                    `json:"total_distance_mi"`
	DurationSeconds int                        `json:"duration_seconds"`
	Segments        []SegmentResponse          `json:"segments"`
	Jurisdictions   []JurisdictionCostResponse `json:"jurisdictions"`
	TotalPermitFees float64                    `json:"total_permit_fees"`
	TotalEscortCost float64                    `json:"total_escort_cost"`
	Warnings        []string                   `json:"warnings"`
}
