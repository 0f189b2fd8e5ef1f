package recommend

import (
	"sort"
	"strings"

	"ingredient-assistant/internal/core/nlp"
	"ingredient-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

const maxSuggestions = 10

// Suggestion 候選食材與其味道重疊分數
type Suggestion struct {
	Ingredient   string   `json:"ingredient"`
	TasteScore   int      `json:"taste_score"`
	TasteMatches []string `json:"taste_matches"`
}

// AllergenConflict 含過敏原的食材
type AllergenConflict struct {
	Ingredient string   `json:"ingredient"`
	Allergens  []string `json:"allergens"`
	Severity   string   `json:"severity"`
}

// AllergyAnalysis 過敏原查核結果
type AllergyAnalysis struct {
	SafeIngredients    []string           `json:"safe_ingredients"`
	AllergenContaining []AllergenConflict `json:"allergen_containing"`
	Warnings           []string           `json:"warnings"`
}

// TasteRecommendation 依味道偏好分類後的推薦
type TasteRecommendation struct {
	TastePreferences []string            `json:"taste_preferences"`
	AllSuggestions   []string            `json:"all_suggestions"`
	Categorized      map[string][]string `json:"categorized"`
	TotalSuggestions int                 `json:"total_suggestions"`
}

// Service 食材推薦服務
type Service struct{}

// NewService 建立推薦服務
func NewService() *Service {
	return &Service{}
}

// normalizeTagSet 將標籤集合詞元化並轉小寫，回傳查詢用集合
// 過敏原比對兩側都經過詞元化，"nut" 與 "nuts" 視為同一標籤
func normalizeTagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = common.NormalizeIngredientName(tag)
		if tag == "" {
			continue
		}
		set[nlp.Lemma(tag)] = struct{}{}
	}
	return set
}

// hasAllergenConflict 檢查食材過敏原是否與使用者過敏集合相交
func hasAllergenConflict(allergens []string, userAllergies map[string]struct{}) []string {
	var conflicts []string
	for _, allergen := range allergens {
		if _, ok := userAllergies[nlp.Lemma(allergen)]; ok {
			conflicts = append(conflicts, allergen)
		}
	}
	return conflicts
}

// Recommend 依味道偏好與過敏原排除，回傳最多 10 個候選食材
// 過敏原衝突為硬性過濾；味道偏好為空時收錄所有過敏原安全的食材
func (s *Service) Recommend(tastes, allergies []string) []Suggestion {
	userAllergies := normalizeTagSet(allergies)
	userTastes := make(map[string]struct{}, len(tastes))
	for _, taste := range tastes {
		taste = common.NormalizeIngredientName(taste)
		if taste != "" {
			userTastes[taste] = struct{}{}
		}
	}

	suggestions := make([]Suggestion, 0, len(ingredientTable))
	for _, info := range ingredientTable {
		if len(hasAllergenConflict(info.Allergens, userAllergies)) > 0 {
			continue // 硬性過濾，不可覆寫
		}

		matches := []string{}
		for _, taste := range info.Tastes {
			if _, ok := userTastes[taste]; ok {
				matches = append(matches, taste)
			}
		}

		if len(matches) > 0 || len(userTastes) == 0 {
			suggestions = append(suggestions, Suggestion{
				Ingredient:   info.Name,
				TasteScore:   len(matches),
				TasteMatches: matches,
			})
		}
	}

	// 分數遞減；同分維持表的插入順序
	sort.SliceStable(suggestions, func(a, b int) bool {
		return suggestions[a].TasteScore > suggestions[b].TasteScore
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	common.LogDebug("食材推薦完成",
		zap.Int("taste_count", len(tastes)),
		zap.Int("allergy_count", len(allergies)),
		zap.Int("suggestion_count", len(suggestions)),
	)

	return suggestions
}

// CheckAllergies 分析食材清單中的過敏原衝突
func (s *Service) CheckAllergies(ingredients, userAllergies []string) *AllergyAnalysis {
	allergySet := normalizeTagSet(userAllergies)

	analysis := &AllergyAnalysis{
		SafeIngredients:    []string{},
		AllergenContaining: []AllergenConflict{},
		Warnings:           []string{},
	}

	for _, ingredient := range ingredients {
		name := common.NormalizeIngredientName(ingredient)
		conflicts := hasAllergenConflict(allergenTable[name], allergySet)

		if len(conflicts) == 0 {
			analysis.SafeIngredients = append(analysis.SafeIngredients, ingredient)
			continue
		}

		severity := "medium"
		if len(conflicts) > 1 {
			severity = "high"
		}
		analysis.AllergenContaining = append(analysis.AllergenContaining, AllergenConflict{
			Ingredient: ingredient,
			Allergens:  conflicts,
			Severity:   severity,
		})
		analysis.Warnings = append(analysis.Warnings,
			"⚠️ "+ingredient+" contains "+strings.Join(conflicts, ", "))
	}

	return analysis
}

// 固定的味道分類槽；其餘歸入 other
var tasteCategories = []string{"sweet", "savory", "spicy", "creamy", "fresh"}

// TasteRecommendations 依味道偏好推薦並將結果按偏好分類
func (s *Service) TasteRecommendations(tastePreferences, excludeAllergies []string) *TasteRecommendation {
	suggestions := s.Recommend(tastePreferences, excludeAllergies)

	names := make([]string, len(suggestions))
	for i, sg := range suggestions {
		names[i] = sg.Ingredient
	}

	categorized := map[string][]string{"other": {}}
	for _, category := range tasteCategories {
		categorized[category] = []string{}
	}

	prefSet := make(map[string]struct{}, len(tastePreferences))
	for _, pref := range tastePreferences {
		prefSet[common.NormalizeIngredientName(pref)] = struct{}{}
	}

	for _, sg := range suggestions {
		placed := false
		for _, match := range sg.TasteMatches {
			if _, wanted := prefSet[match]; !wanted {
				continue
			}
			bucket := "other"
			for _, category := range tasteCategories {
				if match == category {
					bucket = category
					break
				}
			}
			if bucket != "other" {
				categorized[bucket] = append(categorized[bucket], sg.Ingredient)
				placed = true
				break
			}
		}
		if !placed {
			categorized["other"] = append(categorized["other"], sg.Ingredient)
		}
	}

	return &TasteRecommendation{
		TastePreferences: tastePreferences,
		AllSuggestions:   names,
		Categorized:      categorized,
		TotalSuggestions: len(names),
	}
}
