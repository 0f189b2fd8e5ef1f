package flavor

import (
	"context"
	"encoding/json"
	"testing"

	"ingredient-assistant/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupStaticCorpus(t *testing.T) {
	svc := NewService(nil, nil, nil)

	record, err := svc.Lookup(context.Background(), "  Vanilla ")
	require.NoError(t, err)
	assert.Equal(t, "vanilla", record.Name)
	assert.Contains(t, record.PrimaryFlavors, "sweet")
	assert.Equal(t, 9, record.TasteProfile.Sweetness)
}

func TestLookupNotFound(t *testing.T) {
	svc := NewService(nil, nil, nil)

	_, err := svc.Lookup(context.Background(), "plutonium")

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "plutonium", nf.Ingredient)
	assert.Len(t, nf.Suggestions, 10)
}

func TestLookupEmptyName(t *testing.T) {
	svc := NewService(nil, nil, nil)

	_, err := svc.Lookup(context.Background(), "   ")
	assert.True(t, common.IsValidationError(err))
}

func TestLookupFallsBackToStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir() + "/cache.json")
	require.NoError(t, err)

	custom := &Record{
		Name:           "saffron",
		PrimaryFlavors: []string{"floral", "earthy"},
		Categories:     []string{"spice"},
	}
	require.NoError(t, store.Put(context.Background(), custom))

	svc := NewService(nil, store, nil)

	record, err := svc.Lookup(context.Background(), "Saffron")
	require.NoError(t, err)
	assert.Equal(t, "saffron", record.Name)
	assert.Equal(t, []string{"floral", "earthy"}, record.PrimaryFlavors)
}

func TestAllSortedByName(t *testing.T) {
	svc := NewService(nil, nil, nil)

	records := svc.All()
	require.Len(t, records, 10)
	for i := 1; i < len(records); i++ {
		assert.Less(t, records[i-1].Name, records[i].Name)
	}
}

func TestCategoriesIdempotent(t *testing.T) {
	svc := NewService(nil, nil, nil)

	first, err := json.Marshal(svc.Categories())
	require.NoError(t, err)
	second, err := json.Marshal(svc.Categories())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPairingsUnion(t *testing.T) {
	svc := NewService(nil, nil, nil)

	// herb 分類包含 basil 與 mint，聯集去重後排序
	pairings, err := svc.Pairings("Herb")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"chocolate", "garlic", "lamb", "lemon", "mozzarella",
		"olive oil", "tea", "tomato", "vegetables",
	}, pairings)
}

func TestPairingsUnknownCategory(t *testing.T) {
	svc := NewService(nil, nil, nil)

	_, err := svc.Pairings("galactic")

	var cnf *CategoryNotFoundError
	require.ErrorAs(t, err, &cnf)
	assert.Equal(t, "galactic", cnf.Category)
	assert.NotEmpty(t, cnf.Available)
}

func TestProfile(t *testing.T) {
	svc := NewService(nil, nil, nil)

	summary, err := svc.Profile(context.Background(), []string{"vanilla", "chocolate", "plutonium"})
	require.NoError(t, err)

	assert.Equal(t, []string{"vanilla", "chocolate"}, summary.Matched)
	assert.Equal(t, []string{"plutonium"}, summary.Unknown)
	assert.Equal(t, 2, summary.TotalMatched)
	assert.InDelta(t, 7.5, summary.AverageProfile["sweetness"], 1e-9)
	assert.InDelta(t, 4.5, summary.AverageProfile["bitterness"], 1e-9)
	require.NotEmpty(t, summary.DominantFlavors)
	assert.Equal(t, "sweet", summary.DominantFlavors[0])
}

func TestProfileEmptyInput(t *testing.T) {
	svc := NewService(nil, nil, nil)

	_, err := svc.Profile(context.Background(), nil)
	assert.True(t, common.IsValidationError(err))
}
