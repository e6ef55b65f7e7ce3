package shop

import (
	"context"
	"errors"
	"io"
	"log"

	"giftstore/internal/domain"
)

// Fetcher retrieves the daily shop rotation from upstream.
type Fetcher interface {
	FetchDailyShop(ctx context.Context) ([]domain.ShopItem, error)
}

// CachedCatalog serves the rotation from cache and falls back to the
// upstream fetcher on a miss. Cache failures never mask fetch results.
type CachedCatalog struct {
	fetcher Fetcher
	cache   Cache
	logger  *log.Logger
}

// NewCachedCatalog builds a CachedCatalog. cache may be nil, in which case
// every call goes upstream.
func NewCachedCatalog(fetcher Fetcher, cache Cache, logger *log.Logger) *CachedCatalog {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &CachedCatalog{fetcher: fetcher, cache: cache, logger: logger}
}

// DailyShop returns the current rotation. Upstream fetch errors propagate
// to the caller; an empty rotation is returned as an empty slice.
func (c *CachedCatalog) DailyShop(ctx context.Context) ([]domain.ShopItem, error) {
	if c.cache != nil {
		items, err := c.cache.Get(ctx)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			c.logger.Printf("shop catalog: cache read error=%v", err)
		}
	}

	items, err := c.fetcher.FetchDailyShop(ctx)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, items); err != nil {
			c.logger.Printf("shop catalog: cache write error=%v", err)
		}
	}
	return items, nil
}
