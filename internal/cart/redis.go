package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"giftstore/internal/domain"
)

// RedisStore keeps cart items as JSON payloads with a TTL, so abandoned
// carts expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds a RedisStore with a 24h cart lifetime.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: 24 * time.Hour}
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*domain.CartItem, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	item, err := decodeItem(data)
	if err != nil {
		// Stored payloads are untrusted; a malformed one is dropped and
		// surfaced as an empty cart rather than passed through.
		_ = r.client.Del(ctx, cartKey(sessionID)).Err()
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (r *RedisStore) Set(ctx context.Context, sessionID string, item domain.CartItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal cart item failed: %w", err)
	}
	if err := r.client.Set(ctx, cartKey(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func decodeItem(data []byte) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	if strings.TrimSpace(item.ItemID) == "" || item.Price < 0 {
		return nil, errors.New("invalid cart payload")
	}
	return &item, nil
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}
