package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ingredient-assistant/internal/core/flavor"
	"ingredient-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FlavorHandler 風味查詢處理器
type FlavorHandler struct {
	service *flavor.Service
}

// NewFlavorHandler 創建風味處理器
func NewFlavorHandler(service *flavor.Service) *FlavorHandler {
	return &FlavorHandler{service: service}
}

// HandleFlavor 查詢單一食材的風味資料
func (h *FlavorHandler) HandleFlavor(c *gin.Context) {
	requestID := ensureRequestID(c)

	ingredient := c.Query("ingredient")
	if ingredient == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Ingredient name is required",
		})
		return
	}

	record, err := h.service.Lookup(c.Request.Context(), ingredient)
	if err != nil {
		h.renderLookupError(c, requestID, ingredient, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// HandleFlavors 回傳完整靜態風味資料庫
func (h *FlavorHandler) HandleFlavors(c *gin.Context) {
	records := h.service.All()
	c.JSON(http.StatusOK, gin.H{
		"flavors": records,
		"count":   len(records),
	})
}

// HandleCategories 回傳風味分類表
func (h *FlavorHandler) HandleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.service.Categories(),
	})
}

// HandlePairings 回傳某分類的搭配建議聯集
func (h *FlavorHandler) HandlePairings(c *gin.Context) {
	category := c.Param("category")

	pairings, err := h.service.Pairings(category)
	if err != nil {
		var cnf *flavor.CategoryNotFoundError
		if errors.As(err, &cnf) {
			c.JSON(http.StatusOK, gin.H{
				"error":                fmt.Sprintf("Unknown flavor category '%s'", cnf.Category),
				"suggestion":           fmt.Sprintf("Try one of these categories: %s", strings.Join(cnf.Available, ", ")),
				"available_categories": cnf.Available,
			})
			return
		}
		respondError(c, common.ErrInternalError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": strings.ToLower(strings.TrimSpace(category)),
		"pairings": pairings,
	})
}

// HandleProfile 彙總多個食材的風味輪廓
func (h *FlavorHandler) HandleProfile(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req struct {
		Ingredients []string `json:"ingredients"`
	}
	if err := bindStrictJSON(c, &req); err != nil {
		respondError(c, common.ErrInvalidRequest)
		return
	}

	summary, err := h.service.Profile(c.Request.Context(), req.Ingredients)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.renderLookupError(c, requestID, "", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// renderLookupError 統一處理風味查詢的錯誤回應
func (h *FlavorHandler) renderLookupError(c *gin.Context, requestID, ingredient string, err error) {
	var nf *flavor.NotFoundError
	if errors.As(err, &nf) {
		// 與替代查詢一致：查無資料回傳指引而非錯誤狀態
		c.JSON(http.StatusOK, gin.H{
			"error":                 fmt.Sprintf("No flavor data found for '%s'", nf.Ingredient),
			"suggestion":            fmt.Sprintf("Try one of these ingredients: %s", strings.Join(nf.Suggestions, ", ")),
			"available_ingredients": nf.Suggestions,
		})
		return
	}

	var upstream *flavor.UpstreamError
	if errors.As(err, &upstream) {
		common.LogError("風味上游服務失敗",
			zap.String("request_id", requestID),
			zap.String("ingredient", ingredient),
			zap.Int("status_code", upstream.StatusCode),
		)
		respondError(c, common.ErrUpstreamFailure)
		return
	}

	if common.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	common.LogError("風味查詢失敗",
		zap.Error(err),
		zap.String("request_id", requestID),
		zap.String("ingredient", ingredient),
	)
	respondError(c, common.ErrInternalError)
}
