package shop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftstore/internal/domain"
)

type stubFetcher struct {
	items []domain.ShopItem
	err   error
	calls int
}

func (s *stubFetcher) FetchDailyShop(_ context.Context) ([]domain.ShopItem, error) {
	s.calls++
	return s.items, s.err
}

type stubCache struct {
	items    []domain.ShopItem
	getErr   error
	setErr   error
	setItems []domain.ShopItem
	setCalls int
}

func (s *stubCache) Get(_ context.Context) ([]domain.ShopItem, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.items, nil
}

func (s *stubCache) Set(_ context.Context, items []domain.ShopItem) error {
	s.setCalls++
	s.setItems = items
	return s.setErr
}

func TestCachedCatalog_ServesFromCache(t *testing.T) {
	cached := []domain.ShopItem{{ID: "cached"}}
	fetcher := &stubFetcher{items: []domain.ShopItem{{ID: "fresh"}}}
	catalog := NewCachedCatalog(fetcher, &stubCache{items: cached}, nil)

	got, err := catalog.DailyShop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, got)
	assert.Zero(t, fetcher.calls)
}

func TestCachedCatalog_MissFetchesAndFills(t *testing.T) {
	fresh := []domain.ShopItem{{ID: "fresh"}}
	fetcher := &stubFetcher{items: fresh}
	cache := &stubCache{getErr: ErrCacheMiss}
	catalog := NewCachedCatalog(fetcher, cache, nil)

	got, err := catalog.DailyShop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.Equal(t, 1, cache.setCalls)
	assert.Equal(t, fresh, cache.setItems)
}

func TestCachedCatalog_FetchErrorPropagates(t *testing.T) {
	fetchErr := errors.New("upstream down")
	catalog := NewCachedCatalog(&stubFetcher{err: fetchErr}, &stubCache{getErr: ErrCacheMiss}, nil)

	_, err := catalog.DailyShop(context.Background())
	assert.ErrorIs(t, err, fetchErr)
}

func TestCachedCatalog_CacheWriteFailureIsTolerated(t *testing.T) {
	fresh := []domain.ShopItem{{ID: "fresh"}}
	cache := &stubCache{getErr: ErrCacheMiss, setErr: errors.New("redis down")}
	catalog := NewCachedCatalog(&stubFetcher{items: fresh}, cache, nil)

	got, err := catalog.DailyShop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestCachedCatalog_NilCacheGoesUpstream(t *testing.T) {
	fetcher := &stubFetcher{items: []domain.ShopItem{{ID: "fresh"}}}
	catalog := NewCachedCatalog(fetcher, nil, nil)

	got, err := catalog.DailyShop(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, fetcher.calls)
}
