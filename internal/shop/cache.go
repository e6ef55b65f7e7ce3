package shop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"giftstore/internal/domain"
)

// ErrCacheMiss is returned when no rotation is cached.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores the current shop rotation between upstream fetches.
type Cache interface {
	Get(ctx context.Context) ([]domain.ShopItem, error)
	Set(ctx context.Context, items []domain.ShopItem) error
}

const rotationKey = "shop:rotation"

// RedisCache keeps the rotation as a JSON blob with a TTL, so a stale
// rotation expires on its own and the next request refetches.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache builds a RedisCache with the given TTL.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context) ([]domain.ShopItem, error) {
	data, err := r.client.Get(ctx, rotationKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []domain.ShopItem
	if err := json.Unmarshal(data, &items); err != nil {
		// A corrupt blob counts as a miss; drop it so Set can repopulate.
		_ = r.client.Del(ctx, rotationKey).Err()
		return nil, ErrCacheMiss
	}
	return items, nil
}

func (r *RedisCache) Set(ctx context.Context, items []domain.ShopItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal rotation failed: %w", err)
	}
	if err := r.client.Set(ctx, rotationKey, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
