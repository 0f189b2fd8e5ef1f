package api

import (
	"context"
	"time"

	"ingredient-assistant/internal/api/handlers"
	"ingredient-assistant/internal/api/handlers/health"
	"ingredient-assistant/internal/api/middleware"
	"ingredient-assistant/internal/core/flavor"
	"ingredient-assistant/internal/core/nlp"
	"ingredient-assistant/internal/core/nutrition"
	"ingredient-assistant/internal/core/recommend"
	"ingredient-assistant/internal/core/substitution"
	"ingredient-assistant/internal/infrastructure/config"
	"ingredient-assistant/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (1MB)，所有請求皆為純文字 JSON
	maxBodySize = 1 << 20
)

// Services 路由所需的全部領域服務
type Services struct {
	Substitution *substitution.Service
	Flavor       *flavor.Service
	FlavorCache  *flavor.MemCache
	Tagger       *nlp.Tagger
	Recommender  *recommend.Service
	Nutrition    *nutrition.Service
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, svcs *Services) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 全局中間件：設置超時並注入配置
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Set("config", cfg)
		c.Set("flavor_cache", svcs.FlavorCache)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(common.ErrGatewayTimeout.Status, common.ErrorResponse{
				Code:    common.ErrGatewayTimeout.Code,
				Message: common.ErrGatewayTimeout.Message,
			})
			c.Abort()
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	substitutionHandler := handlers.NewSubstitutionHandler(svcs.Substitution)
	flavorHandler := handlers.NewFlavorHandler(svcs.Flavor)
	nlpHandler := handlers.NewNLPHandler(svcs.Tagger, svcs.Recommender)
	nutritionHandler := handlers.NewNutritionHandler(svcs.Nutrition)

	// 替代食材
	router.GET("/substitute", substitutionHandler.HandleSubstitute)

	// 風味查詢
	router.GET("/flavor", flavorHandler.HandleFlavor)
	router.GET("/flavors", flavorHandler.HandleFlavors)
	router.GET("/flavor-categories", flavorHandler.HandleCategories)
	router.GET("/flavor-pairings/:category", flavorHandler.HandlePairings)
	router.POST("/flavor-profile", flavorHandler.HandleProfile)

	// 自由文字查詢
	nlpGroup := router.Group("/nlp")
	{
		nlpGroup.POST("/parse", nlpHandler.HandleParse)
		nlpGroup.POST("/suggestions", nlpHandler.HandleSuggestions)
		nlpGroup.POST("/allergy-check", nlpHandler.HandleAllergyCheck)
		nlpGroup.POST("/taste-recommendations", nlpHandler.HandleTasteRecommendations)
	}

	// 營養查詢
	router.GET("/calories", nutritionHandler.HandleCalories)
	router.POST("/calories/recipe", nutritionHandler.HandleRecipeCalories)

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
