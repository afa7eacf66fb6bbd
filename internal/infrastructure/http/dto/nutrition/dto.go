// Package nutrition holds the request/response shapes for the Nutrition
// Intelligence Core's read surfaces: prediction, autocomplete, library
// stats, and the correction telemetry log.
package nutrition

import (
	"time"

	"github.com/kjanat/poo-tracker/backend/internal/domain/correction"
	"github.com/kjanat/poo-tracker/backend/internal/domain/ingredientlibrary"
	"github.com/kjanat/poo-tracker/backend/internal/domain/prediction"
)

// PredictionResponse is the response for getPrediction (spec.md §6).
type PredictionResponse struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"proteinG"`
	FatG       float64 `json:"fatG"`
	CarbsG     float64 `json:"carbsG"`
	Confidence float64 `json:"confidence"`
	SampleSize int     `json:"sampleSize"`
	Matched    string  `json:"matched"`
}

// ToPredictionResponse converts a prediction.Result to its wire form.
func ToPredictionResponse(query string, r *prediction.Result) PredictionResponse {
	return PredictionResponse{
		Name:       query,
		Quantity:   r.Quantity,
		Unit:       r.Unit,
		Calories:   r.Calories,
		ProteinG:   r.ProteinG,
		FatG:       r.FatG,
		CarbsG:     r.CarbsG,
		Confidence: r.Confidence,
		SampleSize: r.SampleSize,
		Matched:    r.Matched,
	}
}

// LibraryEntryResponse is one row of an autocomplete / library listing.
type LibraryEntryResponse struct {
	ID              string  `json:"id"`
	NormalizedName  string  `json:"normalizedName"`
	DisplayName     string  `json:"displayName"`
	SampleSize      int     `json:"sampleSize"`
	Confidence      float64 `json:"confidence"`
	TypicalQuantity float64 `json:"typicalQuantity"`
	TypicalUnit     string  `json:"typicalUnit"`
}

// ToLibraryEntryResponse converts an ingredientlibrary.Entry to its wire form.
func ToLibraryEntryResponse(e *ingredientlibrary.Entry) LibraryEntryResponse {
	return LibraryEntryResponse{
		ID:              e.ID,
		NormalizedName:  e.NormalizedName,
		DisplayName:     e.DisplayName,
		SampleSize:      e.SampleSize,
		Confidence:      e.Confidence,
		TypicalQuantity: e.TypicalQuantity,
		TypicalUnit:     e.TypicalUnit,
	}
}

// LibraryStatsResponse backs getLibraryStats.
type LibraryStatsResponse struct {
	Total               int     `json:"total"`
	AvgConfidence       float64 `json:"avgConfidence"`
	HighConfidenceCount int     `json:"highConfidenceCount"`
}

// ToLibraryStatsResponse converts ingredientlibrary.Stats to its wire form.
func ToLibraryStatsResponse(s *ingredientlibrary.Stats) LibraryStatsResponse {
	return LibraryStatsResponse{
		Total:               s.Total,
		AvgConfidence:       s.AvgConfidence,
		HighConfidenceCount: s.HighConfidenceCount,
	}
}

// CorrectionResponse is one row of listCorrections.
type CorrectionResponse struct {
	ID                   string    `json:"id"`
	MealID               string    `json:"mealId"`
	FieldName            string    `json:"fieldName"`
	AIValue              float64   `json:"aiValue"`
	UserValue            float64   `json:"userValue"`
	AbsoluteError        float64   `json:"absoluteError"`
	PercentError         float64   `json:"percentError"`
	ConfidenceAtAnalysis *float64  `json:"confidenceAtAnalysis,omitempty"`
	LocationType         string    `json:"locationType,omitempty"`
	CorrectedAt          time.Time `json:"correctedAt"`
}

// ToCorrectionResponse converts one correction.AiCorrectionLog row.
func ToCorrectionResponse(log *correction.AiCorrectionLog) CorrectionResponse {
	return CorrectionResponse{
		ID:                   log.ID,
		MealID:               log.MealID,
		FieldName:            log.FieldName,
		AIValue:              log.AIValue,
		UserValue:            log.UserValue,
		AbsoluteError:        log.AbsoluteError,
		PercentError:         log.PercentError,
		ConfidenceAtAnalysis: log.ConfidenceAtAnalysis,
		LocationType:         log.LocationType,
		CorrectedAt:          log.CorrectedAt,
	}
}

// ToCorrectionListResponse converts a page of correction log rows.
func ToCorrectionListResponse(logs []*correction.AiCorrectionLog) []CorrectionResponse {
	out := make([]CorrectionResponse, len(logs))
	for i, l := range logs {
		out[i] = ToCorrectionResponse(l)
	}
	return out
}
