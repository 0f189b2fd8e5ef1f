package substitution

import (
	"context"
	"fmt"

	"ingredient-assistant/internal/core/similarity"
	"ingredient-assistant/internal/infrastructure/config"
	"ingredient-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Substitute 單一替代品與其 0–100 分數
type Substitute struct {
	Ingredient string  `json:"ingredient"`
	Score      float64 `json:"score"`
}

// Outcome 階段嘗試的結果型別
// Miss 與 Failed 都會落入下一階段，但 Failed 代表真正的執行錯誤，
// 需要記錄而不能與「查無資料」混為一談
type Outcome int

const (
	// OutcomeHit 階段產出可用結果，終止回退鏈
	OutcomeHit Outcome = iota
	// OutcomeMiss 階段查無資料，靜默落空
	OutcomeMiss
	// OutcomeFailed 階段執行錯誤，記錄後落空
	OutcomeFailed
)

// Stage 回退鏈中的單一解析策略
type Stage interface {
	Name() string
	Attempt(ctx context.Context, ingredient string) ([]Substitute, Outcome, error)
}

// Resolution 成功解析的結果
type Resolution struct {
	Ingredient  string       `json:"ingredient"`
	Source      string       `json:"source"`
	Substitutes []Substitute `json:"substitutes"`
}

// NotFoundError 所有階段皆落空；附帶已知可解析的食材範例
type NotFoundError struct {
	Ingredient  string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no substitutes found for '%s'", e.Ingredient)
}

// rankerStage 即時相似度階段：以 TF-IDF 排名器對內建語料庫比對
type rankerStage struct {
	ranker *similarity.Ranker
}

func (s *rankerStage) Name() string {
	return "live-similarity"
}

func (s *rankerStage) Attempt(_ context.Context, ingredient string) ([]Substitute, Outcome, error) {
	matches, err := s.ranker.Rank(ingredient)
	if err != nil {
		// 空查詢與無匹配都屬於查無資料，不是執行錯誤
		return nil, OutcomeMiss, nil
	}
	subs := make([]Substitute, len(matches))
	for i, m := range matches {
		subs[i] = Substitute{Ingredient: m.Ingredient, Score: m.Score}
	}
	return subs, OutcomeHit, nil
}

// Service 替代品解析服務：依序嘗試各階段直到取得結果
type Service struct {
	stages []Stage
}

// NewService 建立解析服務，階段順序固定：
// 學習模型 → 即時相似度 → 靜態替代表
func NewService(cfg *config.Config) *Service {
	return &Service{
		stages: []Stage{
			newModelStage(cfg.Substitution.ModelPath),
			&rankerStage{ranker: similarity.NewRanker(Corpus())},
			&staticStage{},
		},
	}
}

// NewServiceWithStages 以自訂階段建立服務（測試用）
func NewServiceWithStages(stages ...Stage) *Service {
	return &Service{stages: stages}
}

// Resolve 解析替代品；所有階段落空時回傳 *NotFoundError
// 階段內部錯誤一律轉為落空，不向呼叫端傳播
func (s *Service) Resolve(ctx context.Context, ingredient string) (*Resolution, error) {
	name := common.NormalizeIngredientName(ingredient)
	if name == "" {
		return nil, common.NewValidationError("ingredient name is required")
	}

	for _, stage := range s.stages {
		subs, outcome, err := stage.Attempt(ctx, name)
		switch outcome {
		case OutcomeHit:
			common.LogInfo("替代品解析成功",
				zap.String("stage", stage.Name()),
				zap.String("ingredient", name),
				zap.Int("count", len(subs)),
			)
			return &Resolution{
				Ingredient:  name,
				Source:      stage.Name(),
				Substitutes: subs,
			}, nil
		case OutcomeFailed:
			common.LogStageFallthrough(stage.Name(), name, err)
		default:
			common.LogStageFallthrough(stage.Name(), name, nil)
		}
	}

	return nil, &NotFoundError{
		Ingredient:  name,
		Suggestions: FallbackIngredients(),
	}
}
