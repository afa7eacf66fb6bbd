package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kjanat/poo-tracker/backend/internal/domain/correction"
	"github.com/kjanat/poo-tracker/backend/internal/domain/ingredientlibrary"
	"github.com/kjanat/poo-tracker/backend/internal/domain/prediction"
	nutritiondto "github.com/kjanat/poo-tracker/backend/internal/infrastructure/http/dto/nutrition"
)

// NutritionHandler serves the Prediction & Suggestion, Ingredient Library,
// and Correction Telemetry read surfaces (spec.md §6).
type NutritionHandler struct {
	prediction  *prediction.Service
	library     ingredientlibrary.Repository
	corrections correction.Repository
}

func NewNutritionHandler(predictionSvc *prediction.Service, library ingredientlibrary.Repository, corrections correction.Repository) *NutritionHandler {
	return &NutritionHandler{prediction: predictionSvc, library: library, corrections: corrections}
}

// GetPrediction resolves ?name=&quantity=&unit= against the caller's library.
func (h *NutritionHandler) GetPrediction(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	quantity, _ := strconv.ParseFloat(c.Query("quantity"), 64)
	unit := c.Query("unit")

	result, err := h.prediction.Predict(c.Request.Context(), userID, name, quantity, unit)
	if err != nil {
		if errors.Is(err, prediction.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, nutritiondto.ToPredictionResponse(name, result))
}

// SearchPredictions serves ranked autocomplete over the caller's library.
func (h *NutritionHandler) SearchPredictions(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	query := c.Query("q")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	entries, err := h.prediction.Autocomplete(c.Request.Context(), userID, query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := make([]nutritiondto.LibraryEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = nutritiondto.ToLibraryEntryResponse(e)
	}
	c.JSON(http.StatusOK, gin.H{"results": resp})
}

// GetLibraryStats returns aggregate confidence/coverage stats for the
// caller's ingredient library.
func (h *NutritionHandler) GetLibraryStats(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	stats, err := h.library.Stats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, nutritiondto.ToLibraryStatsResponse(stats))
}

// ListCorrections serves the Correction Telemetry log for the caller.
func (h *NutritionHandler) ListCorrections(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.corrections.ListByOwner(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"corrections": nutritiondto.ToCorrectionListResponse(logs)})
}
