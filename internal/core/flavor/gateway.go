package flavor

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"ingredient-assistant/internal/infrastructure/config"
	"ingredient-assistant/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// placeholderAPIKey 範本設定檔留下的佔位金鑰，視同未設定
const placeholderAPIKey = "your_api_key_here"

// UpstreamError 外部風味 API 呼叫失敗
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("flavor upstream error (status %d): %s", e.StatusCode, e.Message)
}

// Gateway Foodoscope 風味 API 閘道
type Gateway struct {
	config *config.Config
	client *resty.Client
}

// upstreamRecord 上游回應中會用到的欄位
type upstreamRecord struct {
	Entity         string   `json:"entity_alias_readable"`
	Category       string   `json:"category_readable"`
	CommonName     string   `json:"common_name"`
	FlavorProfiles string   `json:"flavor_profile"`
	Compounds      []string `json:"molecules"`
}

// upstreamResponse Foodoscope by-naturalOccurrence 回應
type upstreamResponse struct {
	Entities []upstreamRecord `json:"entities"`
}

// NewGateway 創建風味 API 閘道；憑證未設定時回傳 nil
func NewGateway(cfg *config.Config) *Gateway {
	key := strings.TrimSpace(cfg.Foodoscope.APIKey)
	if key == "" || key == placeholderAPIKey {
		common.LogInfo("風味上游未設定憑證，停用外部查詢")
		return nil
	}

	client := resty.New().
		SetBaseURL(cfg.Foodoscope.BaseURL).
		SetTimeout(cfg.Foodoscope.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", key))

	return &Gateway{
		config: cfg,
		client: client,
	}
}

// Fetch 向上游查詢單一食材的風味資料
func (g *Gateway) Fetch(ctx context.Context, ingredient string) (*Record, error) {
	name := common.NormalizeIngredientName(ingredient)

	var result upstreamResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("occurrence", name).
		SetResult(&result).
		Get("/flavordb/properties/by-naturalOccurrence")

	if err != nil {
		common.LogError("風味上游請求失敗",
			zap.String("食材", name),
			zap.Error(err),
		)
		return nil, &UpstreamError{Message: err.Error()}
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("風味上游回應錯誤狀態",
			zap.String("食材", name),
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode(),
			Message:    resp.String(),
		}
	}

	if len(result.Entities) == 0 {
		return nil, nil
	}

	rec := convertUpstream(name, result.Entities[0])
	common.LogInfo("風味上游查詢成功",
		zap.String("食材", name),
		zap.Int("主風味數", len(rec.PrimaryFlavors)),
	)
	return rec, nil
}

// convertUpstream 把上游欄位轉成本地紀錄格式
func convertUpstream(name string, u upstreamRecord) *Record {
	rec := &Record{Name: name}

	if u.FlavorProfiles != "" {
		for _, f := range strings.Split(u.FlavorProfiles, "@") {
			if f = strings.TrimSpace(f); f != "" {
				rec.PrimaryFlavors = append(rec.PrimaryFlavors, strings.ToLower(f))
			}
		}
	}
	if u.Category != "" {
		rec.Categories = []string{strings.ToLower(u.Category)}
	}
	if len(u.Compounds) > 0 {
		rec.AromaCompounds = u.Compounds
	}
	if u.CommonName != "" && !strings.EqualFold(u.CommonName, name) {
		rec.ChemicalNotes = fmt.Sprintf("Also known as %s", u.CommonName)
	}

	return rec
}
