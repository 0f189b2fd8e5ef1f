package nlp

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"ingredient-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Entity 具名實體
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// ParsedQuery 查詢解析結果
type ParsedQuery struct {
	Tokens             []string        `json:"tokens"`
	Lemmas             []string        `json:"lemmas"`
	Allergies          []string        `json:"allergies"`
	Tastes             []string        `json:"tastes"`
	Entities           []Entity        `json:"entities"`
	DietaryPreferences map[string]bool `json:"dietary_preferences"`
}

// tokenPattern 匹配字母數字序列，保留連字號複合詞（gluten-free 等）
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:-[\p{L}\p{N}]+)*`)

// quantityPattern 匹配數量描述（如 200g、2 cups）
var quantityPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\s*(?:g|kg|ml|l|oz|lb|cups?|tbsp|tsp)?\b`)

// Tagger 自由文字標記器
// 所有操作皆為輸入的純函數；關鍵字表為唯讀靜態資料
type Tagger struct{}

// NewTagger 創建標記器
func NewTagger() *Tagger {
	return &Tagger{}
}

// Tag 解析使用者查詢，萃取過敏原、味道偏好、實體與飲食偏好
// 空白輸入回傳空結果而非錯誤
func (t *Tagger) Tag(query string) *ParsedQuery {
	result := &ParsedQuery{
		Tokens:             []string{},
		Lemmas:             []string{},
		Allergies:          []string{},
		Tastes:             []string{},
		Entities:           []Entity{},
		DietaryPreferences: map[string]bool{},
	}
	for _, pref := range dietaryPreferences {
		result.DietaryPreferences[pref.Flag] = false
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return result
	}

	// 分詞與詞元化（平行序列）
	tokens := tokenPattern.FindAllString(strings.ToLower(trimmed), -1)
	lemmas := make([]string, len(tokens))
	for i, token := range tokens {
		lemmas[i] = Lemma(token)
	}
	result.Tokens = tokens
	result.Lemmas = lemmas

	// 關鍵字比對：原詞或詞元命中時收錄該詞元；
	// 僅詞幹命中時收錄「關鍵字」的詞元（sweetness → sweet）
	allergies := map[string]struct{}{}
	tastes := map[string]struct{}{}
	for i, token := range tokens {
		lemma := lemmas[i]
		if allergyKeywords.Contains(token) || allergyKeywords.Contains(lemma) {
			allergies[lemma] = struct{}{}
		} else if kw, ok := allergyKeywords.MatchStem(token); ok {
			allergies[kw] = struct{}{}
		}
		if tasteKeywords.Contains(token) || tasteKeywords.Contains(lemma) {
			tastes[lemma] = struct{}{}
		} else if kw, ok := tasteKeywords.MatchStem(token); ok {
			tastes[kw] = struct{}{}
		}
	}
	result.Allergies = sortedKeys(allergies)
	result.Tastes = sortedKeys(tastes)

	// 實體萃取為盡力而為；失敗時降級為空清單，不影響整體查詢
	result.Entities = t.extractEntities(trimmed)

	// 飲食偏好：任一同義詞出現於 tokens 即為 true
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		tokenSet[token] = struct{}{}
	}
	for _, pref := range dietaryPreferences {
		for _, term := range pref.Terms {
			if _, ok := tokenSet[term]; ok {
				result.DietaryPreferences[pref.Flag] = true
				break
			}
		}
	}

	return result
}

// extractEntities 萃取數量與專有名詞片段
func (t *Tagger) extractEntities(query string) (entities []Entity) {
	entities = []Entity{}
	defer func() {
		if r := recover(); r != nil {
			common.LogWarn("實體萃取失敗，降級為空清單", zap.Any("panic", r))
			entities = []Entity{}
		}
	}()

	// 數量
	for _, m := range quantityPattern.FindAllString(query, -1) {
		m = strings.TrimSpace(m)
		if m == "" || !strings.ContainsAny(m, "0123456789") {
			continue
		}
		entities = append(entities, Entity{Text: m, Label: "QUANTITY"})
	}

	// 大寫開頭的連續片段視為專有名詞（略過句首）
	words := strings.Fields(query)
	var span []string
	flush := func() {
		if len(span) > 0 {
			entities = append(entities, Entity{Text: strings.Join(span, " "), Label: "PRODUCT"})
			span = nil
		}
	}
	for i, word := range words {
		cleaned := strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if cleaned == "" {
			flush()
			continue
		}
		first := []rune(cleaned)[0]
		if unicode.IsUpper(first) && i > 0 && cleaned != "I" {
			span = append(span, cleaned)
			continue
		}
		flush()
	}
	flush()

	return entities
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
