package flavor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"ingredient-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// knownIngredients 靜態資料庫收錄的食材，順序固定，用於錯誤提示
var knownIngredients = []string{
	"vanilla", "chocolate", "garlic", "lemon", "cinnamon",
	"coffee", "basil", "ginger", "honey", "mint",
}

// NotFoundError 所有資料來源都查不到該食材
type NotFoundError struct {
	Ingredient  string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no flavor data found for '%s'", e.Ingredient)
}

// CategoryNotFoundError 查無此風味分類
type CategoryNotFoundError struct {
	Category  string
	Available []string
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("unknown flavor category '%s'", e.Category)
}

// ProfileSummary 多食材的風味彙總
type ProfileSummary struct {
	Matched         []string           `json:"matched"`
	Unknown         []string           `json:"unknown"`
	AverageProfile  map[string]float64 `json:"average_profile"`
	DominantFlavors []string           `json:"dominant_flavors"`
	TotalMatched    int                `json:"total_matched"`
}

// Service 風味查詢服務
type Service struct {
	cache   *MemCache
	store   RecordStore
	gateway *Gateway
}

// NewService 創建風味服務；store 與 gateway 都可為 nil
func NewService(cache *MemCache, store RecordStore, gateway *Gateway) *Service {
	return &Service{
		cache:   cache,
		store:   store,
		gateway: gateway,
	}
}

// Lookup 依序查詢記憶體快取、靜態資料庫、持久層、外部閘道
func (s *Service) Lookup(ctx context.Context, ingredient string) (*Record, error) {
	name := common.NormalizeIngredientName(ingredient)
	if name == "" {
		return nil, common.NewValidationError("ingredient name is required")
	}

	if rec, ok := s.cache.Get(name); ok {
		common.LogCacheHit("flavor", name)
		return rec, nil
	}
	common.LogCacheMiss("flavor", name)

	if rec, ok := flavorCorpus[name]; ok {
		s.cache.Set(rec)
		return rec, nil
	}

	if s.store != nil {
		rec, ok, err := s.store.Get(ctx, name)
		if err != nil {
			// 持久層故障不阻斷查詢，記錄後續試外部來源
			common.LogWarn("風味持久層讀取失敗",
				zap.String("食材", name),
				zap.Error(err),
			)
		} else if ok {
			s.cache.Set(rec)
			return rec, nil
		}
	}

	if s.gateway != nil {
		rec, err := s.gateway.Fetch(ctx, name)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			s.cache.Set(rec)
			if s.store != nil {
				if err := s.store.Put(ctx, rec); err != nil {
					common.LogWarn("風味持久層寫入失敗",
						zap.String("食材", name),
						zap.Error(err),
					)
				}
			}
			return rec, nil
		}
	}

	return nil, &NotFoundError{
		Ingredient:  name,
		Suggestions: KnownIngredients(),
	}
}

// All 回傳完整靜態風味資料庫，依名稱排序
func (s *Service) All() []*Record {
	out := make([]*Record, 0, len(flavorCorpus))
	for _, rec := range flavorCorpus {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Categories 分類對成員名稱的映射，成員排序固定
func (s *Service) Categories() map[string][]string {
	out := make(map[string][]string)
	for name, rec := range flavorCorpus {
		for _, cat := range rec.Categories {
			out[cat] = append(out[cat], name)
		}
	}
	for cat := range out {
		sort.Strings(out[cat])
	}
	return out
}

// Pairings 分類內全部成員搭配建議的去重聯集
func (s *Service) Pairings(category string) ([]string, error) {
	cat := strings.ToLower(strings.TrimSpace(category))

	seen := make(map[string]bool)
	found := false
	for _, rec := range flavorCorpus {
		if !containsString(rec.Categories, cat) {
			continue
		}
		found = true
		for _, p := range rec.PairingSuggestions {
			seen[p] = true
		}
	}

	if !found {
		categories := s.Categories()
		available := make([]string, 0, len(categories))
		for c := range categories {
			available = append(available, c)
		}
		sort.Strings(available)
		return nil, &CategoryNotFoundError{Category: cat, Available: available}
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// Profile 彙總多個食材的平均味覺輪廓與主導風味
func (s *Service) Profile(ctx context.Context, ingredients []string) (*ProfileSummary, error) {
	if len(ingredients) == 0 {
		return nil, common.NewValidationError("at least one ingredient is required")
	}

	summary := &ProfileSummary{
		Matched:        []string{},
		Unknown:        []string{},
		AverageProfile: map[string]float64{},
	}

	var sweetness, bitterness, acidity, umami, intensity int
	flavorCounts := make(map[string]int)

	for _, ing := range ingredients {
		rec, err := s.Lookup(ctx, ing)
		if err != nil {
			var nf *NotFoundError
			if errors.As(err, &nf) {
				summary.Unknown = append(summary.Unknown, common.NormalizeIngredientName(ing))
				continue
			}
			return nil, err
		}

		summary.Matched = append(summary.Matched, rec.Name)
		sweetness += rec.TasteProfile.Sweetness
		bitterness += rec.TasteProfile.Bitterness
		acidity += rec.TasteProfile.Acidity
		umami += rec.TasteProfile.Umami
		intensity += rec.TasteProfile.Intensity
		for _, f := range rec.PrimaryFlavors {
			flavorCounts[f]++
		}
	}

	summary.TotalMatched = len(summary.Matched)
	if summary.TotalMatched > 0 {
		n := float64(summary.TotalMatched)
		summary.AverageProfile = map[string]float64{
			"sweetness":  roundAxis(float64(sweetness) / n),
			"bitterness": roundAxis(float64(bitterness) / n),
			"acidity":    roundAxis(float64(acidity) / n),
			"umami":      roundAxis(float64(umami) / n),
			"intensity":  roundAxis(float64(intensity) / n),
		}
		summary.DominantFlavors = dominantFlavors(flavorCounts, 5)
	}

	return summary, nil
}

// KnownIngredients 靜態資料庫的食材清單（複本）
func KnownIngredients() []string {
	out := make([]string, len(knownIngredients))
	copy(out, knownIngredients)
	return out
}

// dominantFlavors 依出現次數取前 limit 個風味，同次數按字母序
func dominantFlavors(counts map[string]int, limit int) []string {
	flavors := make([]string, 0, len(counts))
	for f := range counts {
		flavors = append(flavors, f)
	}
	sort.Slice(flavors, func(i, j int) bool {
		if counts[flavors[i]] != counts[flavors[j]] {
			return counts[flavors[i]] > counts[flavors[j]]
		}
		return flavors[i] < flavors[j]
	})
	if len(flavors) > limit {
		flavors = flavors[:limit]
	}
	return flavors
}

// roundAxis 四捨五入到小數點後兩位
func roundAxis(v float64) float64 {
	return math.Round(v*100) / 100
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
