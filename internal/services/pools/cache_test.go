package pools

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shahswap/route-engine/internal/domain"
)

type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	pools []*domain.Pool
	err   error
}

func (f *fakeFetcher) PoolsForToken(ctx context.Context, token string) ([]*domain.Pool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.pools, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testPool(id string) *domain.Pool {
	return &domain.Pool{ID: id, Address: "0x" + id, Type: domain.PoolTypeWeighted}
}

func TestPoolCacheHit(t *testing.T) {
	fetcher := &fakeFetcher{pools: []*domain.Pool{testPool("p1")}}
	cache := NewPoolCache(fetcher, time.Minute)

	first := cache.PoolsForToken(context.Background(), "0xAAA")
	second := cache.PoolsForToken(context.Background(), "0xaaa")

	if fetcher.callCount() != 1 {
		t.Errorf("fetch count = %d, want 1 (second lookup should hit cache)", fetcher.callCount())
	}
	if len(first) != 1 || len(second) != 1 {
		t.Errorf("unexpected pool counts: %d, %d", len(first), len(second))
	}
}

func TestPoolCacheExpiry(t *testing.T) {
	fetcher := &fakeFetcher{pools: []*domain.Pool{testPool("p1")}}
	cache := NewPoolCache(fetcher, 10*time.Millisecond)

	cache.PoolsForToken(context.Background(), "0xAAA")
	time.Sleep(25 * time.Millisecond)
	cache.PoolsForToken(context.Background(), "0xAAA")

	if fetcher.callCount() != 2 {
		t.Errorf("fetch count = %d, want 2 after TTL expiry", fetcher.callCount())
	}
}

func TestPoolCacheFailOpen(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("indexer down")}
	cache := NewPoolCache(fetcher, time.Minute)

	got := cache.PoolsForToken(context.Background(), "0xAAA")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty slice on fetch failure, got %v", got)
	}

	// Failures are not cached: the next access retries.
	cache.PoolsForToken(context.Background(), "0xAAA")
	if fetcher.callCount() != 2 {
		t.Errorf("fetch count = %d, want 2 (failure must not be cached)", fetcher.callCount())
	}

	stats := cache.Stats()
	if stats.Entries != 0 {
		t.Errorf("failed fetch left %d cache entries", stats.Entries)
	}
}

func TestPoolCacheClearAndStats(t *testing.T) {
	fetcher := &fakeFetcher{pools: []*domain.Pool{testPool("p1")}}
	cache := NewPoolCache(fetcher, time.Minute)

	cache.PoolsForToken(context.Background(), "0xAAA")
	cache.PoolsForToken(context.Background(), "0xBBB")

	stats := cache.Stats()
	if stats.Entries != 2 {
		t.Fatalf("entries = %d, want 2", stats.Entries)
	}
	for _, k := range stats.Keys {
		if k != "0xaaa" && k != "0xbbb" {
			t.Errorf("unexpected cache key %q", k)
		}
	}

	cache.Clear()
	if cache.Stats().Entries != 0 {
		t.Error("clear did not empty the cache")
	}

	cache.PoolsForToken(context.Background(), "0xAAA")
	if fetcher.callCount() != 3 {
		t.Errorf("fetch count = %d, want 3 after clear", fetcher.callCount())
	}
}
