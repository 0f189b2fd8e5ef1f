package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"ingredient-assistant/internal/core/substitution"
	"ingredient-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubstitutionHandler 替代食材查詢處理器
type SubstitutionHandler struct {
	service *substitution.Service
}

// NewSubstitutionHandler 創建替代食材處理器
func NewSubstitutionHandler(service *substitution.Service) *SubstitutionHandler {
	return &SubstitutionHandler{service: service}
}

// HandleSubstitute 查詢替代食材
func (h *SubstitutionHandler) HandleSubstitute(c *gin.Context) {
	requestID := ensureRequestID(c)

	ingredient := c.Query("ingredient")
	if ingredient == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Ingredient name is required",
		})
		return
	}

	resolution, err := h.service.Resolve(c.Request.Context(), ingredient)
	if err != nil {
		var nf *substitution.NotFoundError
		if errors.As(err, &nf) {
			// 查無結果回傳帶指引的結構化內容，不視為請求失敗
			c.JSON(http.StatusOK, gin.H{
				"error":                 fmt.Sprintf("No substitutes found for '%s'", nf.Ingredient),
				"suggestion":            fmt.Sprintf("Try specific ingredients like %s", common.JoinQuoted(nf.Suggestions[:3])),
				"available_ingredients": nf.Suggestions,
			})
			return
		}
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		common.LogError("替代食材查詢失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("ingredient", ingredient),
		)
		respondError(c, common.ErrInternalError)
		return
	}

	common.LogInfo("替代食材查詢完成",
		zap.String("request_id", requestID),
		zap.String("ingredient", resolution.Ingredient),
		zap.String("source", resolution.Source),
		zap.Int("count", len(resolution.Substitutes)),
	)

	c.JSON(http.StatusOK, resolution.Substitutes)
}
