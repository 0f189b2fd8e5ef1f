package substitution

import (
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"sort"
	"sync"

	"ingredient-assistant/internal/core/similarity"
	"ingredient-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Artifact 預計算的替代品向量空間
// Ingredients 與 Vectors 為平行序列；向量已 L2 正規化
type Artifact struct {
	Ingredients []string
	Vectors     [][]float64
}

// WriteArtifact 以 gob 序列化模型工件（離線訓練工具與測試使用）
func WriteArtifact(path string, artifact *Artifact) error {
	if len(artifact.Ingredients) != len(artifact.Vectors) {
		return fmt.Errorf("artifact length mismatch: %d ingredients, %d vectors",
			len(artifact.Ingredients), len(artifact.Vectors))
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create artifact: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(artifact); err != nil {
		return fmt.Errorf("failed to encode artifact: %w", err)
	}
	return nil
}

// modelStage 學習模型階段：載入預計算向量空間後做餘弦比對
// 工件缺失或食材不在其中時落空，不讓整個呼叫失敗
type modelStage struct {
	path string

	once     sync.Once
	artifact *Artifact
	loadErr  error
}

func newModelStage(path string) *modelStage {
	return &modelStage{path: path}
}

func (s *modelStage) Name() string {
	return "learned-model"
}

// load 只嘗試載入一次；結果（含失敗）在程序生命週期內固定
func (s *modelStage) load() (*Artifact, error) {
	s.once.Do(func() {
		f, err := os.Open(s.path)
		if err != nil {
			if os.IsNotExist(err) {
				common.LogInfo("替代品模型工件不存在，階段停用",
					zap.String("path", s.path),
				)
				return
			}
			s.loadErr = fmt.Errorf("failed to open artifact: %w", err)
			return
		}
		defer f.Close()

		var artifact Artifact
		if err := gob.NewDecoder(f).Decode(&artifact); err != nil {
			s.loadErr = fmt.Errorf("failed to decode artifact: %w", err)
			return
		}
		if len(artifact.Ingredients) != len(artifact.Vectors) {
			s.loadErr = fmt.Errorf("artifact length mismatch")
			return
		}
		s.artifact = &artifact
		common.LogInfo("替代品模型工件已載入",
			zap.String("path", s.path),
			zap.Int("ingredients", len(artifact.Ingredients)),
		)
	})
	return s.artifact, s.loadErr
}

func (s *modelStage) Attempt(_ context.Context, ingredient string) ([]Substitute, Outcome, error) {
	artifact, err := s.load()
	if err != nil {
		return nil, OutcomeFailed, err
	}
	if artifact == nil {
		return nil, OutcomeMiss, nil // 工件不存在
	}

	name := common.NormalizeIngredientName(ingredient)
	queryIdx := -1
	for i, candidate := range artifact.Ingredients {
		if candidate == name {
			queryIdx = i
			break
		}
	}
	if queryIdx < 0 {
		return nil, OutcomeMiss, nil // 模型不認識此食材
	}

	type scored struct {
		index int
		sim   float64
	}
	candidates := make([]scored, 0, len(artifact.Ingredients)-1)
	for i := range artifact.Ingredients {
		if i == queryIdx {
			continue
		}
		candidates = append(candidates, scored{
			index: i,
			sim:   similarity.Cosine(artifact.Vectors[queryIdx], artifact.Vectors[i]),
		})
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].sim > candidates[b].sim
	})

	subs := make([]Substitute, 0, 3)
	for _, c := range candidates {
		if len(subs) >= 3 {
			break
		}
		if c.sim <= 0.10 {
			break
		}
		subs = append(subs, Substitute{
			Ingredient: artifact.Ingredients[c.index],
			Score:      similarity.RoundScore(c.sim * 100),
		})
	}
	if len(subs) == 0 {
		return nil, OutcomeMiss, nil
	}
	return subs, OutcomeHit, nil
}
