package nutrition

import (
	"testing"

	"ingredient-assistant/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	svc := NewService()

	facts, err := svc.Lookup("  Milk ")
	require.NoError(t, err)
	assert.Equal(t, "milk", facts.Ingredient)
	assert.Equal(t, 42.0, facts.Calories)
	assert.Equal(t, "per 100g", facts.Unit)
}

func TestLookupNotFound(t *testing.T) {
	svc := NewService()

	_, err := svc.Lookup("plutonium")

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "plutonium", nf.Ingredient)
	assert.NotEmpty(t, nf.Suggestions)
}

func TestLookupEmptyName(t *testing.T) {
	svc := NewService()

	_, err := svc.Lookup("   ")
	assert.True(t, common.IsValidationError(err))
}

func TestRecipeTotals(t *testing.T) {
	svc := NewService()

	total, err := svc.Recipe([]RecipeItem{
		{Ingredient: "milk", Amount: 200},
		{Ingredient: "sugar", Amount: 50},
	}, 2)
	require.NoError(t, err)

	// milk 200g = 84 kcal、sugar 50g = 193.5 kcal
	assert.InDelta(t, 277.5, total.TotalCalories, 1e-9)
	assert.InDelta(t, 6.8, total.TotalProtein, 1e-9)
	assert.Equal(t, 2, total.ServingSize)
	assert.InDelta(t, 139, total.PerServing["calories"], 1e-9)

	require.Len(t, total.Breakdown, 2)
	assert.Equal(t, "milk", total.Breakdown[0].Ingredient)
	assert.InDelta(t, 84, total.Breakdown[0].Calories, 1e-9)
	assert.Empty(t, total.Unknown)
}

func TestRecipeUnknownIngredients(t *testing.T) {
	svc := NewService()

	total, err := svc.Recipe([]RecipeItem{
		{Ingredient: "milk", Amount: 100},
		{Ingredient: "plutonium", Amount: 100},
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"plutonium"}, total.Unknown)
	require.Len(t, total.Breakdown, 1)
	assert.InDelta(t, 42, total.TotalCalories, 1e-9)
}

func TestRecipeEmptyInput(t *testing.T) {
	svc := NewService()

	_, err := svc.Recipe(nil, 1)
	assert.True(t, common.IsValidationError(err))
}

func TestRecipeServingSizeFloor(t *testing.T) {
	svc := NewService()

	total, err := svc.Recipe([]RecipeItem{{Ingredient: "milk", Amount: 100}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total.ServingSize)
}
