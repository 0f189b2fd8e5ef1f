package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"ingredient-assistant/internal/core/nutrition"
	"ingredient-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// NutritionHandler 營養查詢處理器
type NutritionHandler struct {
	service *nutrition.Service
}

// NewNutritionHandler 創建營養處理器
func NewNutritionHandler(service *nutrition.Service) *NutritionHandler {
	return &NutritionHandler{service: service}
}

// HandleCalories 查詢單一食材的營養值
func (h *NutritionHandler) HandleCalories(c *gin.Context) {
	ingredient := c.Query("ingredient")
	if ingredient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient name is required"})
		return
	}

	facts, err := h.service.Lookup(ingredient)
	if err != nil {
		var nf *nutrition.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusOK, gin.H{
				"error":                 fmt.Sprintf("No calorie data found for '%s'", nf.Ingredient),
				"suggestion":            "Try common ingredients like milk, chicken, or rice",
				"available_ingredients": nf.Suggestions,
			})
			return
		}
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, common.ErrInternalError)
		return
	}

	c.JSON(http.StatusOK, facts)
}

// RecipeCaloriesRequest 食譜營養計算請求
type RecipeCaloriesRequest struct {
	Ingredients []nutrition.RecipeItem `json:"ingredients"`
	ServingSize int                    `json:"serving_size"`
}

// HandleRecipeCalories 計算整份食譜的營養彙總
func (h *NutritionHandler) HandleRecipeCalories(c *gin.Context) {
	var req RecipeCaloriesRequest
	if err := bindStrictJSON(c, &req); err != nil {
		respondError(c, common.ErrInvalidRequest)
		return
	}

	total, err := h.service.Recipe(req.Ingredients, req.ServingSize)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, common.ErrInternalError)
		return
	}

	c.JSON(http.StatusOK, total)
}
