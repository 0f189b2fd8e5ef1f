package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ingredient-assistant/internal/api"
	"ingredient-assistant/internal/core/flavor"
	"ingredient-assistant/internal/core/nlp"
	"ingredient-assistant/internal/core/nutrition"
	"ingredient-assistant/internal/core/recommend"
	"ingredient-assistant/internal/core/substitution"
	"ingredient-assistant/internal/infrastructure/config"
	"ingredient-assistant/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.String("model_path", cfg.Substitution.ModelPath),
		zap.Bool("foodoscope_enabled", cfg.Foodoscope.APIKey != ""),
	)

	// 初始化風味持久層（僅在快取開啟時）
	var store flavor.RecordStore
	if cfg.Cache.Enabled {
		store, err = flavor.NewRecordStore(cfg)
		if err != nil {
			common.LogFatal("Failed to initialize record store", zap.Error(err))
		}
		defer store.Close()
	}

	// 初始化記憶體快取與外部閘道
	memCache := flavor.NewMemCache(cfg)
	defer memCache.Close()
	gateway := flavor.NewGateway(cfg)

	svcs := &api.Services{
		Substitution: substitution.NewService(cfg),
		Flavor:       flavor.NewService(memCache, store, gateway),
		FlavorCache:  memCache,
		Tagger:       nlp.NewTagger(),
		Recommender:  recommend.NewService(),
		Nutrition:    nutrition.NewService(),
	}

	// 設置路由
	router, err := api.SetupRouter(cfg, svcs)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
