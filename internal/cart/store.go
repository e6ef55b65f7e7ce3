package cart

import (
	"context"

	"giftstore/internal/domain"
)

// Store holds the single cart item of each browsing session. The observed
// flow supports exactly one item at a time: setting a new item replaces
// the previous one.
type Store interface {
	Get(ctx context.Context, sessionID string) (*domain.CartItem, error)
	Set(ctx context.Context, sessionID string, item domain.CartItem) error
	Clear(ctx context.Context, sessionID string) error
}
