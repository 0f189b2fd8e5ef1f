package common

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// NormalizeIngredientName 正規化食材名稱（去除前後空白並轉為小寫）
// 所有查表、比對一律使用正規化後的鍵
func NormalizeIngredientName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// JoinQuoted 將字符串切片轉換為 'a', 'b', 'c' 形式（用於錯誤提示）
func JoinQuoted(items []string) string {
	if len(items) == 0 {
		return ""
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	return strings.Join(quoted, ", ")
}
