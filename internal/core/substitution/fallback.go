package substitution

import (
	"context"

	"ingredient-assistant/internal/pkg/common"
)

// fallbackTable 常見食材的人工維護替代表，分數為固定值
var fallbackTable = map[string][]Substitute{
	"milk": {
		{Ingredient: "almond milk", Score: 90},
		{Ingredient: "soy milk", Score: 85},
		{Ingredient: "coconut milk", Score: 80},
		{Ingredient: "oat milk", Score: 82},
		{Ingredient: "cashew milk", Score: 83},
	},
	"butter": {
		{Ingredient: "coconut oil", Score: 88},
		{Ingredient: "olive oil", Score: 75},
		{Ingredient: "margarine", Score: 92},
		{Ingredient: "ghee", Score: 85},
		{Ingredient: "avocado oil", Score: 80},
	},
	"cheese": {
		{Ingredient: "nutritional yeast", Score: 78},
		{Ingredient: "cashew cheese", Score: 85},
		{Ingredient: "tofu", Score: 70},
		{Ingredient: "mozzarella", Score: 88},
	},
	"eggs": {
		{Ingredient: "flax eggs", Score: 82},
		{Ingredient: "chia eggs", Score: 82},
		{Ingredient: "applesauce", Score: 75},
		{Ingredient: "banana", Score: 70},
		{Ingredient: "silken tofu", Score: 78},
	},
	"flour": {
		{Ingredient: "almond flour", Score: 88},
		{Ingredient: "coconut flour", Score: 80},
		{Ingredient: "oat flour", Score: 85},
		{Ingredient: "whole wheat flour", Score: 90},
		{Ingredient: "gluten-free flour", Score: 82},
	},
	"sugar": {
		{Ingredient: "honey", Score: 88},
		{Ingredient: "maple syrup", Score: 85},
		{Ingredient: "stevia", Score: 75},
		{Ingredient: "coconut sugar", Score: 82},
		{Ingredient: "brown sugar", Score: 90},
	},
	"dairy": {
		{Ingredient: "almond milk", Score: 90},
		{Ingredient: "coconut yogurt", Score: 85},
		{Ingredient: "nutritional yeast", Score: 78},
		{Ingredient: "dairy-free", Score: 88},
		{Ingredient: "plant-based milk", Score: 86},
	},
}

// staticStage 靜態替代表階段：小寫精確匹配，查無即落空
type staticStage struct{}

func (s *staticStage) Name() string {
	return "static-fallback"
}

func (s *staticStage) Attempt(_ context.Context, ingredient string) ([]Substitute, Outcome, error) {
	subs, ok := fallbackTable[common.NormalizeIngredientName(ingredient)]
	if !ok {
		return nil, OutcomeMiss, nil
	}
	// 回傳副本避免呼叫端修改靜態表
	out := make([]Substitute, len(subs))
	copy(out, subs)
	return out, OutcomeHit, nil
}

// FallbackIngredients 回傳靜態表已知可解析的食材名稱（排序固定）
func FallbackIngredients() []string {
	return []string{"milk", "butter", "cheese", "eggs", "flour", "sugar", "dairy"}
}
