package handlers

import (
	"github.com/gin-gonic/gin"

	"ingredient-assistant/internal/pkg/common"
)

// ensureRequestID 取出請求 ID，缺少時補上一個
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// bindStrictJSON 嚴格解析請求體，未知欄位視為錯誤
func bindStrictJSON(c *gin.Context, v interface{}) error {
	return common.DecodeJSONStrict(c.Request.Body, v)
}

// respondError 以預定義錯誤回應統一的錯誤結構
func respondError(c *gin.Context, e *common.CustomError) {
	c.JSON(e.Status, common.ErrorResponse{
		Code:    e.Code,
		Message: e.Message,
	})
}

// queryOrBody 先讀 query 參數，沒有時再從 JSON body 取同名欄位
func queryOrBody(c *gin.Context, field string) string {
	if v := c.Query(field); v != "" {
		return v
	}

	var body map[string]interface{}
	if err := common.DecodeJSON(c.Request.Body, &body); err != nil {
		return ""
	}
	if v, ok := body[field].(string); ok {
		return v
	}
	return ""
}
