package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"portrait-atelier-server/modules/common/config"
	"portrait-atelier-server/modules/common/redis"
)

// ErrNotFound - 스테이징된 적 없거나 TTL 만료
var ErrNotFound = errors.New("order image not found")

// Store - 주문 이미지 임시 저장소 (TTL 명시적, 영속성 없음)
type Store interface {
	Save(ctx context.Context, orderID string, data []byte) error
	Get(ctx context.Context, orderID string) ([]byte, error)
}

// NewStoreFromConfig - Redis 설정 시 Redis 저장소, 아니면 인메모리 폴백
func NewStoreFromConfig(cfg *config.Config) Store {
	ttl := time.Duration(cfg.OrderTTLHours) * time.Hour

	if cfg.HasRedis() {
		rdb, err := redis.Connect(cfg)
		if err != nil {
			log.Printf("⚠️  [Order] Redis unavailable, falling back to in-memory store: %v", err)
		} else {
			log.Printf("✅ [Order] Redis order store ready (TTL: %s)", ttl)
			return NewRedisStore(rdb, ttl)
		}
	}

	log.Printf("✅ [Order] In-memory order store ready (TTL: %s)", ttl)
	return NewMemoryStore(ttl)
}

func orderKey(orderID string) string {
	return "order:" + orderID
}

// RedisStore - Redis 기반 저장소 (SET ... EX로 TTL 부여)
type RedisStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *goredis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, orderID string, data []byte) error {
	if err := s.rdb.Set(ctx, orderKey(orderID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store order image: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, orderID string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, orderKey(orderID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read order image: %w", err)
	}
	return data, nil
}

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore - 인메모리 저장소 (Redis 미설정/테스트용)
// 백그라운드 정리 루틴이 만료 항목 제거
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		items: make(map[string]memoryItem),
		ttl:   ttl,
		now:   time.Now,
	}
	go s.startCleanupRoutine()
	return s
}

func (s *MemoryStore) Save(_ context.Context, orderID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[orderID] = memoryItem{data: data, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, orderID string) ([]byte, error) {
	s.mu.RLock()
	item, exists := s.items[orderID]
	s.mu.RUnlock()

	if !exists || s.now().After(item.expiresAt) {
		return nil, ErrNotFound
	}
	return item.data, nil
}

// startCleanupRoutine - 10분마다 만료 항목 정리
func (s *MemoryStore) startCleanupRoutine() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanupExpired()
	}
}

func (s *MemoryStore) cleanupExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cleaned := 0
	for id, item := range s.items {
		if now.After(item.expiresAt) {
			delete(s.items, id)
			cleaned++
		}
	}

	if cleaned > 0 {
		log.Printf("🧹 [Order] Cleaned up %d expired order image(s) (remaining: %d)", cleaned, len(s.items))
	}
}
