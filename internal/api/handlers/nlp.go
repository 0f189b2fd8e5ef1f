package handlers

import (
	"net/http"

	"ingredient-assistant/internal/core/nlp"
	"ingredient-assistant/internal/core/recommend"
	"ingredient-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NLPHandler 自由文字查詢處理器
type NLPHandler struct {
	tagger      *nlp.Tagger
	recommender *recommend.Service
}

// NewNLPHandler 創建 NLP 處理器
func NewNLPHandler(tagger *nlp.Tagger, recommender *recommend.Service) *NLPHandler {
	return &NLPHandler{
		tagger:      tagger,
		recommender: recommender,
	}
}

// HandleParse 解析使用者查詢
func (h *NLPHandler) HandleParse(c *gin.Context) {
	query := queryOrBody(c, "query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	c.JSON(http.StatusOK, h.tagger.Tag(query))
}

// HandleSuggestions 依查詢給出食材建議
func (h *NLPHandler) HandleSuggestions(c *gin.Context) {
	requestID := ensureRequestID(c)

	query := queryOrBody(c, "query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	parsed := h.tagger.Tag(query)
	suggestions := h.recommender.Recommend(parsed.Tastes, parsed.Allergies)

	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.Ingredient)
	}

	common.LogInfo("智慧建議完成",
		zap.String("request_id", requestID),
		zap.Int("suggestion_count", len(names)),
		zap.Int("allergy_count", len(parsed.Allergies)),
		zap.Int("taste_count", len(parsed.Tastes)),
	)

	c.JSON(http.StatusOK, gin.H{
		"query":               query,
		"parsed_info":         parsed,
		"suggestions":         names,
		"allergy_count":       len(parsed.Allergies),
		"taste_count":         len(parsed.Tastes),
		"dietary_preferences": parsed.DietaryPreferences,
	})
}

// AllergyCheckRequest 過敏原檢查請求
type AllergyCheckRequest struct {
	Ingredients   []string `json:"ingredients"`
	UserAllergies []string `json:"user_allergies"`
}

// HandleAllergyCheck 檢查食材清單的過敏原衝突
func (h *NLPHandler) HandleAllergyCheck(c *gin.Context) {
	var req AllergyCheckRequest
	if err := bindStrictJSON(c, &req); err != nil {
		respondError(c, common.ErrInvalidRequest)
		return
	}
	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredients list is required"})
		return
	}

	c.JSON(http.StatusOK, h.recommender.CheckAllergies(req.Ingredients, req.UserAllergies))
}

// TasteRecommendationRequest 味道偏好推薦請求
type TasteRecommendationRequest struct {
	TastePreferences []string `json:"taste_preferences"`
	ExcludeAllergies []string `json:"exclude_allergies"`
}

// HandleTasteRecommendations 依味道偏好推薦食材
func (h *NLPHandler) HandleTasteRecommendations(c *gin.Context) {
	var req TasteRecommendationRequest
	if err := bindStrictJSON(c, &req); err != nil {
		respondError(c, common.ErrInvalidRequest)
		return
	}
	if len(req.TastePreferences) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Taste preferences are required"})
		return
	}

	c.JSON(http.StatusOK, h.recommender.TasteRecommendations(req.TastePreferences, req.ExcludeAllergies))
}
