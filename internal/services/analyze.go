package services

import (
	"fmt"
	"strings"

	"freight-quote-service/internal/domain"
)

// AnalysisResult is a partial-success value: extraction always produces a
// load, but recommendations are withheld when required fields are
// missing, with diagnostics explaining why.
type AnalysisResult struct {
	Load            domain.ParsedLoad
	MissingFields   []string
	Recommendations []domain.TruckRecommendation
	Warnings        []string
}

// AnalyzeText runs the extraction -> validation -> matching pipeline.
// It never returns an error; degraded extraction surfaces as low
// confidence plus the verbatim missing-field list.
func AnalyzeText(text string, catalog []domain.TrailerProfile) AnalysisResult {
	load := Extract(text)

	result := AnalysisResult{
		Load:          load,
		MissingFields: ValidateParsedLoad(load),
	}

	if len(result.MissingFields) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("load is missing required fields: %s", strings.Join(result.MissingFields, ", ")))
		return result
	}

	result.Recommendations = Match(load, catalog)
	if len(result.Recommendations) == 0 {
		result.Warnings = append(result.Warnings,
			"no trailer configuration can carry this load")
	}

	return result
}
