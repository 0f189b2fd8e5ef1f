package flavor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ingredient-assistant/internal/infrastructure/config"
	"ingredient-assistant/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RecordStore 風味紀錄的持久層
type RecordStore interface {
	// Get 依名稱讀取紀錄；不存在時回傳 (nil, false, nil)
	Get(ctx context.Context, name string) (*Record, bool, error)
	// Put 寫入紀錄
	Put(ctx context.Context, record *Record) error
	// Close 釋放底層資源
	Close() error
}

// NewRecordStore 依設定選擇持久層後端
func NewRecordStore(cfg *config.Config) (RecordStore, error) {
	switch cfg.Cache.Backend {
	case "redis":
		return NewRedisStore(&cfg.Cache)
	case "file":
		return NewFileStore(cfg.Cache.FilePath)
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}

// FileStore 以單一 JSON 檔保存全部紀錄
type FileStore struct {
	path    string
	mu      sync.Mutex
	records map[string]*Record
}

// NewFileStore 載入既有檔案；檔案不存在時從空集合開始
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		records: make(map[string]*Record),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			common.LogInfo("風味快取檔不存在，從空集合開始",
				zap.String("路徑", path),
			)
			return s, nil
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	if err := common.ParseJSONBytes(data, &s.records); err != nil {
		// 壞掉的快取檔不致命，丟棄重建
		common.LogWarn("風味快取檔無法解析，重建",
			zap.String("路徑", path),
			zap.Error(err),
		)
		s.records = make(map[string]*Record)
		return s, nil
	}

	common.LogInfo("風味快取檔已載入",
		zap.String("路徑", path),
		zap.Int("紀錄數", len(s.records)),
	)
	return s, nil
}

// Get 讀取紀錄
func (s *FileStore) Get(_ context.Context, name string) (*Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[common.NormalizeIngredientName(name)]
	if !ok {
		return nil, false, nil
	}
	return rec, true, nil
}

// Put 寫入紀錄並立即改寫整個檔案
func (s *FileStore) Put(_ context.Context, record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[common.NormalizeIngredientName(record.Name)] = record
	return s.flush()
}

// flush 將全部紀錄寫回檔案，呼叫端須持有鎖
func (s *FileStore) flush() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache records: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// Close 寫回最終狀態
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flush()
}

// RedisStore 以 Redis 保存紀錄
type RedisStore struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisStore 建立 Redis 持久層並驗證連線
func NewRedisStore(cfg *config.CacheConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 風味快取已連線",
		zap.String("位址", cfg.RedisAddr),
		zap.Int("資料庫", cfg.RedisDB),
	)

	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get 讀取紀錄
func (s *RedisStore) Get(ctx context.Context, name string) (*Record, bool, error) {
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cache: %w", err)
	}

	var rec Record
	if err := common.ParseJSONBytes(data, &rec); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cache: %w", err)
	}
	return &rec, true, nil
}

// Put 寫入紀錄，沿用設定的 TTL
func (s *RedisStore) Put(ctx context.Context, record *Record) error {
	data, err := common.ToJSON(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := s.client.Set(ctx, s.key(record.Name), data, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// key 生成快取鍵
func (s *RedisStore) key(name string) string {
	return fmt.Sprintf("flavor:record:%s", common.NormalizeIngredientName(name))
}

// Close 關閉連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
