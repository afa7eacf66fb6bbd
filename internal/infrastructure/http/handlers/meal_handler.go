package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kjanat/poo-tracker/backend/internal/domain/meal"
	mealdto "github.com/kjanat/poo-tracker/backend/internal/infrastructure/http/dto/meal"
)

// MealHandler serves the meal and meal-ingredient endpoints, including the
// Ingestion Orchestrator entry point (createMeal).
type MealHandler struct {
	service meal.Service
}

func NewMealHandler(service meal.Service) *MealHandler {
	return &MealHandler{service: service}
}

func (h *MealHandler) Create(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var req mealdto.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &meal.CreateMealInput{
		Name:        req.Name,
		MealTime:    req.MealTime,
		Category:    req.Category,
		SpicyLevel:  req.SpicyLevel,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Cuisine != nil {
		input.Cuisine = *req.Cuisine
	}
	if req.Calories != nil {
		input.Calories = *req.Calories
	}
	if req.FiberRich != nil {
		input.FiberRich = *req.FiberRich
	}
	if req.Dairy != nil {
		input.Dairy = *req.Dairy
	}
	if req.Gluten != nil {
		input.Gluten = *req.Gluten
	}
	if req.PhotoURL != nil {
		input.PhotoURL = *req.PhotoURL
	}
	if req.Notes != nil {
		input.Notes = *req.Notes
	}

	m, err := h.service.Create(c.Request.Context(), userID, input)
	if err != nil {
		respondMealError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mealdto.ToMealResponse(m))
}

func (h *MealHandler) GetByID(c *gin.Context) {
	m, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMealError(c, err)
		return
	}
	c.JSON(http.StatusOK, mealdto.ToMealResponse(m))
}

func (h *MealHandler) List(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	meals, err := h.service.GetByUserID(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondMealError(c, err)
		return
	}
	resp := make([]mealdto.MealResponse, len(meals))
	for i, m := range meals {
		resp[i] = mealdto.ToMealResponse(m)
	}
	c.JSON(http.StatusOK, gin.H{"meals": resp})
}

func (h *MealHandler) Update(c *gin.Context) {
	var req mealdto.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := &meal.UpdateMealInput{
		Name:        req.Name,
		Description: req.Description,
		MealTime:    req.MealTime,
		Category:    req.Category,
		Cuisine:     req.Cuisine,
		Calories:    req.Calories,
		SpicyLevel:  req.SpicyLevel,
		FiberRich:   req.FiberRich,
		Dairy:       req.Dairy,
		Gluten:      req.Gluten,
		PhotoURL:    req.PhotoURL,
		Notes:       req.Notes,
	}

	m, err := h.service.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondMealError(c, err)
		return
	}
	c.JSON(http.StatusOK, mealdto.ToMealResponse(m))
}

func (h *MealHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondMealError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MealHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.service.ListIngredients(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMealError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *MealHandler) AddIngredient(c *gin.Context) {
	var input meal.IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ing, err := h.service.AddIngredient(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		respondMealError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ing)
}

func (h *MealHandler) UpdateIngredient(c *gin.Context) {
	var input meal.IngredientCorrectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ing, err := h.service.UpdateIngredient(c.Request.Context(), c.Param("ingredientId"), &input)
	if err != nil {
		respondMealError(c, err)
		return
	}
	c.JSON(http.StatusOK, ing)
}

func (h *MealHandler) DeleteIngredient(c *gin.Context) {
	if err := h.service.DeleteIngredient(c.Request.Context(), c.Param("ingredientId")); err != nil {
		respondMealError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondMealError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, meal.ErrNotFound), errors.Is(err, meal.ErrIngredientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, meal.ErrInvalidID), errors.Is(err, meal.ErrInvalidUserID),
		errors.Is(err, meal.ErrInvalidInput), errors.Is(err, meal.ErrInvalidName),
		errors.Is(err, meal.ErrInvalidCategory), errors.Is(err, meal.ErrInvalidCalories),
		errors.Is(err, meal.ErrInvalidSpicyLevel), errors.Is(err, meal.ErrInvalidDateRange),
		errors.Is(err, meal.ErrDateRangeTooLarge), errors.Is(err, meal.ErrInvalidIngredientName),
		errors.Is(err, meal.ErrInvalidQuantity), errors.Is(err, meal.ErrInvalidUnit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
