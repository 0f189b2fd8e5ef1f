package nutrition

import (
	"fmt"
	"math"
	"sort"

	"ingredient-assistant/internal/pkg/common"
)

// RecipeItem 食譜中的單一食材與克數
type RecipeItem struct {
	Ingredient string  `json:"ingredient"`
	Amount     float64 `json:"amount"`
}

// ItemBreakdown 食譜中單一食材的營養貢獻
type ItemBreakdown struct {
	Ingredient string  `json:"ingredient"`
	Amount     float64 `json:"amount"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
}

// RecipeTotal 整份食譜的營養彙總
type RecipeTotal struct {
	TotalCalories float64            `json:"total_calories"`
	TotalProtein  float64            `json:"total_protein"`
	TotalCarbs    float64            `json:"total_carbs"`
	TotalFat      float64            `json:"total_fat"`
	ServingSize   int                `json:"serving_size"`
	PerServing    map[string]float64 `json:"per_serving"`
	Breakdown     []ItemBreakdown    `json:"breakdown"`
	Unknown       []string           `json:"unknown_ingredients"`
}

// NotFoundError 營養表查無此食材
type NotFoundError struct {
	Ingredient  string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no calorie data found for '%s'", e.Ingredient)
}

// Service 營養查詢服務
type Service struct{}

// NewService 創建營養服務
func NewService() *Service {
	return &Service{}
}

// Lookup 查詢單一食材每 100 克的營養值
func (s *Service) Lookup(ingredient string) (*Facts, error) {
	name := common.NormalizeIngredientName(ingredient)
	if name == "" {
		return nil, common.NewValidationError("ingredient name is required")
	}

	facts, ok := calorieTable[name]
	if !ok {
		return nil, &NotFoundError{
			Ingredient:  name,
			Suggestions: KnownIngredients(),
		}
	}
	return &facts, nil
}

// Recipe 以 amount/100 比例換算各食材貢獻後加總；查不到的食材列入 unknown
func (s *Service) Recipe(items []RecipeItem, servingSize int) (*RecipeTotal, error) {
	if len(items) == 0 {
		return nil, common.NewValidationError("at least one ingredient is required")
	}
	if servingSize < 1 {
		servingSize = 1
	}

	total := &RecipeTotal{
		ServingSize: servingSize,
		Breakdown:   []ItemBreakdown{},
		Unknown:     []string{},
	}

	for _, item := range items {
		name := common.NormalizeIngredientName(item.Ingredient)
		facts, ok := calorieTable[name]
		if !ok {
			total.Unknown = append(total.Unknown, name)
			continue
		}

		ratio := item.Amount / 100
		b := ItemBreakdown{
			Ingredient: name,
			Amount:     item.Amount,
			Calories:   round1(facts.Calories * ratio),
			Protein:    round1(facts.Protein * ratio),
			Carbs:      round1(facts.Carbs * ratio),
			Fat:        round1(facts.Fat * ratio),
		}
		total.Breakdown = append(total.Breakdown, b)

		total.TotalCalories += facts.Calories * ratio
		total.TotalProtein += facts.Protein * ratio
		total.TotalCarbs += facts.Carbs * ratio
		total.TotalFat += facts.Fat * ratio
	}

	total.TotalCalories = round1(total.TotalCalories)
	total.TotalProtein = round1(total.TotalProtein)
	total.TotalCarbs = round1(total.TotalCarbs)
	total.TotalFat = round1(total.TotalFat)

	n := float64(servingSize)
	total.PerServing = map[string]float64{
		"calories": math.Round(total.TotalCalories / n),
		"protein":  round1(total.TotalProtein / n),
		"carbs":    round1(total.TotalCarbs / n),
		"fat":      round1(total.TotalFat / n),
	}

	return total, nil
}

// KnownIngredients 營養表收錄的食材名稱，依字母序
func KnownIngredients() []string {
	out := make([]string, 0, len(calorieTable))
	for name := range calorieTable {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// round1 四捨五入到小數點後一位
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
