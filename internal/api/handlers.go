package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freight-quote-service/internal/api/dto"
	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/geo"
	"freight-quote-service/internal/ports"
	"freight-quote-service/internal/refdata"
	"freight-quote-service/internal/services"
)

// Requests with less text than this carry no extractable load data.
const minAnalyzeTextLen = 10

type Handler struct {
	Tables   refdata.Tables
	Index    *geo.Index
	Provider ports.RouteProvider
	Log      zerolog.Logger
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", h.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/analyze", h.analyze)
		v1.POST("/quotes", h.quote)
		v1.GET("/trailers", h.listTrailers)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid json body"))
		return
	}

	if len(strings.TrimSpace(req.Text)) < minAnalyzeTextLen {
		c.JSON(http.StatusBadRequest, errorResponse("text must be at least 10 characters"))
		return
	}

	result := services.AnalyzeText(req.Text, h.Tables.Trailers)

	c.JSON(http.StatusOK, analyzeResponse(result))
}

func (h *Handler) quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid json body"))
		return
	}

	origin := domain.GeoPoint{Lat: req.Origin.Lat, Lon: req.Origin.Lon}
	destination := domain.GeoPoint{Lat: req.Destination.Lat, Lon: req.Destination.Lon}
	if origin == destination {
		c.JSON(http.StatusBadRequest, errorResponse("origin and destination must differ"))
		return
	}

	route, err := h.Provider.GetRoute(c.Request.Context(), origin, destination)
	if err != nil {
		h.Log.Error().Err(err).Msg("route provider failed")
		c.JSON(http.StatusBadGateway, errorResponse("routing provider unavailable"))
		return
	}

	cargo := domain.CargoDims{
		LengthIn:       req.Cargo.LengthIn,
		WidthIn:        req.Cargo.WidthIn,
		HeightIn:       req.Cargo.HeightIn,
		GrossWeightLbs: req.Cargo.GrossWeightLbs,
	}

	quote, err := services.PriceRoute(route.Points, cargo, h.Index, h.Tables.Pricing)
	if err != nil {
		if errors.Is(err, services.ErrInvalidGeometry) {
			c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		h.Log.Error().Err(err).Msg("price route failed")
		c.JSON(http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	c.JSON(http.StatusOK, quoteResponse(quote, route.DurationSeconds))
}

func (h *Handler) listTrailers(c *gin.Context) {
	res := dto.ListTrailersResponse{Trailers: make([]dto.TrailerResponse, 0, len(h.Tables.Trailers))}
	for _, t := range h.Tables.Trailers {
		res.Trailers = append(res.Trailers, dto.TrailerResponse{
			ID:             t.ID,
			Name:           t.Name,
			LegalLengthIn:  t.LegalLengthIn,
			LegalWidthIn:   t.LegalWidthIn,
			LegalHeightIn:  t.LegalHeightIn,
			LegalWeightLbs: t.LegalWeightLbs,
			Axles:          t.Axles,
			MaxAxles:       t.MaxAxles,
			DeckHeightIn:   t.DeckHeightIn,
		})
	}

	c.JSON(http.StatusOK, res)
}

func errorResponse(msg string) gin.H {
	return gin.H{"error": msg}
}

func analyzeResponse(result services.AnalysisResult) dto.AnalyzeResponse {
	res := dto.AnalyzeResponse{
		Load: dto.ParsedLoadResponse{
			LengthIn:   result.Load.LengthIn,
			WidthIn:    result.Load.WidthIn,
			HeightIn:   result.Load.HeightIn,
			WeightLbs:  result.Load.WeightLbs,
			Items:      make([]dto.CargoItemResponse, 0, len(result.Load.Items)),
			Confidence: result.Load.Confidence,
		},
		MissingFields:   result.MissingFields,
		Recommendations: make([]dto.RecommendationResponse, 0, len(result.Recommendations)),
		Warnings:        result.Warnings,
	}

	for _, item := range result.Load.Items {
		res.Load.Items = append(res.Load.Items, dto.CargoItemResponse{
			Name:      item.Name,
			LengthIn:  item.LengthIn,
			WidthIn:   item.WidthIn,
			HeightIn:  item.HeightIn,
			WeightLbs: item.WeightLbs,
			Quantity:  item.Quantity,
		})
	}

	for _, rec := range result.Recommendations {
		res.Recommendations = append(res.Recommendations, dto.RecommendationResponse{
			TrailerID:     rec.TrailerID,
			TrailerName:   rec.TrailerName,
			Rank:          rec.Rank,
			Fit:           rec.Fit.String(),
			OverLengthIn:  rec.OverLengthIn,
			OverWidthIn:   rec.OverWidthIn,
			OverHeightIn:  rec.OverHeightIn,
			OverWeightLbs: rec.OverWeightLbs,
			AxlesRequired: rec.AxlesRequired,
			Warnings:      rec.Warnings,
		})
	}

	return res
}

func quoteResponse(quote services.RouteQuote, durationSeconds int) dto.QuoteResponse {
	res := dto.QuoteResponse{
		QuoteID:         uuid.NewString(),
		TotalDistanceMi: quote.TotalDistanceMi,
		DurationSeconds: durationSeconds,
		Segments:        make([]dto.SegmentResponse, 0, len(quote.Segments)),
		Jurisdictions:   make([]dto.JurisdictionCostResponse, 0, len(quote.Breakdown.Jurisdictions)),
		TotalPermitFees: quote.Breakdown.TotalPermitFees,
		TotalEscortCost: quote.Breakdown.TotalEscortCost,
		Warnings:        quote.Breakdown.Warnings,
	}

	for _, s := range quote.Segments {
		res.Segments = append(res.Segments, dto.SegmentResponse{
			Jurisdiction: s.Jurisdiction,
			DistanceMi:   s.DistanceMi,
		})
	}

	for _, j := range quote.Breakdown.Jurisdictions {
		res.Jurisdictions = append(res.Jurisdictions, dto.JurisdictionCostResponse{
			Jurisdiction:   j.Jurisdiction,
			DistanceMi:     j.DistanceMi,
			PermitFee:      j.PermitFee,
			EscortRequired: j.EscortRequired,
			EscortCount:    j.EscortCount,
			EscortCost:     j.EscortCost,
			FallbackFee:    j.FallbackFee,
		})
	}

	return res
}
