package pools

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shahswap/route-engine/internal/common"
	"github.com/shahswap/route-engine/internal/domain"
	"github.com/shahswap/route-engine/internal/metrics"
)

// PoolFetcher is the upstream source of pool snapshots.
type PoolFetcher interface {
	PoolsForToken(ctx context.Context, token string) ([]*domain.Pool, error)
}

type cacheEntry struct {
	pools     []*domain.Pool
	fetchedAt time.Time
}

// PoolCache memoizes per-token pool snapshots with a fixed TTL. Fetch
// failures are swallowed: the caller gets an empty slice and the
// failure is never cached, so the next access retries.
type PoolCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	fetcher PoolFetcher
	log     zerolog.Logger
}

func NewPoolCache(fetcher PoolFetcher, ttl time.Duration) *PoolCache {
	return &PoolCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		fetcher: fetcher,
		log:     common.GetForComponent("pool-cache"),
	}
}

// PoolsForToken returns the cached pool set for a token, fetching on
// miss or expiry. It never returns an error: any fetch failure is
// logged and presented as "no pools", indistinguishable from an empty
// liquidity result.
func (c *PoolCache) PoolsForToken(ctx context.Context, token string) []*domain.Pool {
	key := strings.ToLower(token)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Since(entry.fetchedAt) < c.ttl {
		metrics.PoolCacheHits.Inc()
		return entry.pools
	}
	metrics.PoolCacheMisses.Inc()

	pools, err := c.fetcher.PoolsForToken(ctx, token)
	if err != nil {
		metrics.PoolFetchErrors.Inc()
		c.log.Warn().
			Str("token", token).
			Err(err).
			Msg("pool fetch failed, returning empty set")
		return []*domain.Pool{}
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{pools: pools, fetchedAt: time.Now()}
	metrics.PoolCacheSize.Set(float64(len(c.entries)))
	c.mu.Unlock()

	return pools
}

// Clear drops every cached entry.
func (c *PoolCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	metrics.PoolCacheSize.Set(0)
	c.mu.Unlock()
	c.log.Info().Msg("pool cache cleared")
}

// CacheStats reports the cache's current contents.
type CacheStats struct {
	Entries int      `json:"entries"`
	Keys    []string `json:"keys"`
}

func (c *PoolCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return CacheStats{Entries: len(c.entries), Keys: keys}
}
