package similarity

import (
	"errors"
	"math"
	"sort"

	"ingredient-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// 匹配語意錯誤：兩者皆代表「無資料」而非程式錯誤
var (
	// ErrEmptyQuery 查詢字串為空
	ErrEmptyQuery = errors.New("similarity: empty query")
	// ErrNoMatches 過濾後沒有任何有意義的相似項
	ErrNoMatches = errors.New("similarity: no good matches")
)

const (
	// 預設回傳前三名
	defaultTopK = 3
	// 低於此相似度的項目視為無意義匹配
	defaultMinSimilarity = 0.10
)

// Match 相似度匹配結果，分數為 0–100（保留兩位小數）
type Match struct {
	Ingredient string  `json:"ingredient"`
	Score      float64 `json:"score"`
}

// Ranker 對固定語料庫做餘弦相似度排名
// 查詢字串一律直接向量化，不要求存在於語料庫中
type Ranker struct {
	corpus     []string
	vectorizer *Vectorizer
	matrix     [][]float64
	topK       int
	minScore   float64
}

// NewRanker 以語料庫建立排名器並預先計算所有向量
func NewRanker(corpus []string) *Ranker {
	normalized := make([]string, 0, len(corpus))
	seen := make(map[string]struct{}, len(corpus))
	for _, name := range corpus {
		name = common.NormalizeIngredientName(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		normalized = append(normalized, name)
	}

	vectorizer := NewVectorizer(normalized)
	matrix := make([][]float64, len(normalized))
	for i, name := range normalized {
		matrix[i] = vectorizer.Transform(name)
	}

	common.LogDebug("語料庫向量化完成",
		zap.Int("corpus_size", len(normalized)),
		zap.Int("vocabulary_size", vectorizer.VocabularySize()),
	)

	return &Ranker{
		corpus:     normalized,
		vectorizer: vectorizer,
		matrix:     matrix,
		topK:       defaultTopK,
		minScore:   defaultMinSimilarity,
	}
}

// Corpus 回傳語料庫（唯讀用途）
func (r *Ranker) Corpus() []string {
	return r.corpus
}

// Rank 回傳與查詢最相似的前 K 個食材，排除查詢本身的精確匹配
// 所有候選都低於門檻時回傳 ErrNoMatches
func (r *Ranker) Rank(query string) ([]Match, error) {
	query = common.NormalizeIngredientName(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	queryVector := r.vectorizer.Transform(query)

	type scored struct {
		index int
		sim   float64
	}
	candidates := make([]scored, 0, len(r.corpus))
	for i := range r.corpus {
		if r.corpus[i] == query {
			continue // 永不回傳查詢本身
		}
		candidates = append(candidates, scored{index: i, sim: Cosine(queryVector, r.matrix[i])})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].sim > candidates[b].sim
	})

	matches := make([]Match, 0, r.topK)
	for _, c := range candidates {
		if len(matches) >= r.topK {
			break
		}
		if c.sim <= r.minScore {
			break // 已排序，其後不會更高
		}
		matches = append(matches, Match{
			Ingredient: r.corpus[c.index],
			Score:      RoundScore(c.sim * 100),
		})
	}

	if len(matches) == 0 {
		return nil, ErrNoMatches
	}
	return matches, nil
}

// RoundScore 將分數四捨五入到兩位小數
func RoundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
