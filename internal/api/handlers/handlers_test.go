package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"ingredient-assistant/internal/core/flavor"
	"ingredient-assistant/internal/core/nlp"
	"ingredient-assistant/internal/core/nutrition"
	"ingredient-assistant/internal/core/recommend"
	"ingredient-assistant/internal/core/substitution"
	"ingredient-assistant/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Substitution: config.SubstitutionConfig{
			ModelPath: filepath.Join(t.TempDir(), "missing.gob"),
		},
	}

	substitutionHandler := NewSubstitutionHandler(substitution.NewService(cfg))
	flavorHandler := NewFlavorHandler(flavor.NewService(nil, nil, nil))
	nlpHandler := NewNLPHandler(nlp.NewTagger(), recommend.NewService())
	nutritionHandler := NewNutritionHandler(nutrition.NewService())

	router := gin.New()
	router.GET("/substitute", substitutionHandler.HandleSubstitute)
	router.GET("/flavor", flavorHandler.HandleFlavor)
	router.GET("/flavors", flavorHandler.HandleFlavors)
	router.GET("/flavor-categories", flavorHandler.HandleCategories)
	router.GET("/flavor-pairings/:category", flavorHandler.HandlePairings)
	router.POST("/flavor-profile", flavorHandler.HandleProfile)
	router.POST("/nlp/parse", nlpHandler.HandleParse)
	router.POST("/nlp/suggestions", nlpHandler.HandleSuggestions)
	router.POST("/nlp/allergy-check", nlpHandler.HandleAllergyCheck)
	router.POST("/nlp/taste-recommendations", nlpHandler.HandleTasteRecommendations)
	router.GET("/calories", nutritionHandler.HandleCalories)
	router.POST("/calories/recipe", nutritionHandler.HandleRecipeCalories)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubstituteEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/substitute?ingredient=milk", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var subs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	require.NotEmpty(t, subs)
	for _, sub := range subs {
		assert.NotEqual(t, "milk", sub["ingredient"])
	}
}

func TestSubstituteMissingParam(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/substitute", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubstituteNotFoundGuidance(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/substitute?ingredient=plutonium", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
	assert.Contains(t, body, "suggestion")
	assert.NotEmpty(t, body["available_ingredients"])
}

func TestFlavorEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/flavor?ingredient=vanilla", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "vanilla", record["name"])
}

func TestFlavorNotFoundGuidance(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/flavor?ingredient=plutonium", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
	assert.Len(t, body["available_ingredients"], 10)
}

func TestFlavorCategoriesIdempotent(t *testing.T) {
	router := newTestRouter(t)

	first := doJSON(t, router, http.MethodGet, "/flavor-categories", nil)
	second := doJSON(t, router, http.MethodGet, "/flavor-categories", nil)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestFlavorPairingsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/flavor-pairings/herb", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Category string   `json:"category"`
		Pairings []string `json:"pairings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "herb", body.Category)
	assert.NotEmpty(t, body.Pairings)
}

func TestFlavorProfileEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/flavor-profile", gin.H{
		"ingredients": []string{"vanilla", "chocolate"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 2, body["total_matched"])
}

func TestFlavorProfileRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/flavor-profile", gin.H{
		"ingredients": []string{"vanilla"},
		"bogus":       true,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_REQUEST", body["code"])
}

func TestRecipeCaloriesRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/calories/recipe", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_REQUEST", body["code"])
}

func TestFlavorUpstreamFailureRendersBadGateway(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	cfg := &config.Config{
		Foodoscope: config.FoodoscopeConfig{
			APIKey:  "test-key",
			BaseURL: ts.URL,
			Timeout: 2 * time.Second,
		},
	}
	handler := NewFlavorHandler(flavor.NewService(nil, nil, flavor.NewGateway(cfg)))

	router := gin.New()
	router.GET("/flavor", handler.HandleFlavor)

	w := doJSON(t, router, http.MethodGet, "/flavor?ingredient=saffron", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UPSTREAM_FAILURE", body["code"])
}

func TestNLPParseQueryParam(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/nlp/parse?query=I+am+allergic+to+nuts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var parsed struct {
		Allergies []string `json:"allergies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	assert.Contains(t, parsed.Allergies, "nut")
}

func TestNLPParseJSONBody(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/nlp/parse", gin.H{
		"query": "I like sweet and creamy desserts",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var parsed struct {
		Tastes []string `json:"tastes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	assert.Contains(t, parsed.Tastes, "sweet")
	assert.Contains(t, parsed.Tastes, "creamy")
}

func TestNLPParseMissingQuery(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/nlp/parse", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNLPSuggestionsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/nlp/suggestions", gin.H{
		"query": "I'm allergic to dairy but I like sweet things",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Suggestions  []string `json:"suggestions"`
		AllergyCount int      `json:"allergy_count"`
		TasteCount   int      `json:"taste_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Suggestions)
	assert.Equal(t, 1, body.AllergyCount)
	assert.NotContains(t, body.Suggestions, "milk")
}

func TestNLPAllergyCheckEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/nlp/allergy-check", gin.H{
		"ingredients":    []string{"milk", "rice"},
		"user_allergies": []string{"dairy"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		SafeIngredients []string `json:"safe_ingredients"`
		Warnings        []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"rice"}, body.SafeIngredients)
	require.Len(t, body.Warnings, 1)
	assert.Contains(t, body.Warnings[0], "milk")
}

func TestNLPTasteRecommendationsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/nlp/taste-recommendations", gin.H{
		"taste_preferences": []string{"sweet"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TotalSuggestions int                 `json:"total_suggestions"`
		Categorized      map[string][]string `json:"categorized"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Positive(t, body.TotalSuggestions)
	assert.NotEmpty(t, body.Categorized["sweet"])
}

func TestCaloriesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/calories?ingredient=milk", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var facts map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &facts))
	assert.EqualValues(t, 42, facts["calories"])
}

func TestCaloriesMissingParam(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/calories", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecipeCaloriesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/calories/recipe", gin.H{
		"ingredients": []gin.H{
			{"ingredient": "milk", "amount": 200},
			{"ingredient": "sugar", "amount": 50},
		},
		"serving_size": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TotalCalories float64 `json:"total_calories"`
		ServingSize   int     `json:"serving_size"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 277.5, body.TotalCalories, 1e-9)
	assert.Equal(t, 2, body.ServingSize)
}
