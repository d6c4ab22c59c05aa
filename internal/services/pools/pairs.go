package pools

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shahswap/route-engine/internal/common"
	"github.com/shahswap/route-engine/internal/domain"
)

// PoolSource provides pool snapshots per token; failures appear as
// empty slices.
type PoolSource interface {
	PoolsForToken(ctx context.Context, token string) []*domain.Pool
}

// PairFinder locates pools that hold both sides of a trading pair.
type PairFinder struct {
	source PoolSource
	log    zerolog.Logger
}

func NewPairFinder(source PoolSource) *PairFinder {
	return &PairFinder{
		source: source,
		log:    common.GetForComponent("pair-finder"),
	}
}

// PoolsForPair returns the pools listing both tokens, sorted by total
// liquidity descending. Both token lookups run in parallel; the second
// lookup exists to warm the cache for the reverse direction, the pair
// set itself comes from tokenIn's pools. An empty result is normal,
// not an error.
func (f *PairFinder) PoolsForPair(ctx context.Context, tokenIn, tokenOut string) []*domain.Pool {
	var inPools []*domain.Pool
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		inPools = f.source.PoolsForToken(ctx, tokenIn)
	}()
	go func() {
		defer wg.Done()
		f.source.PoolsForToken(ctx, tokenOut)
	}()
	wg.Wait()

	matched := make([]*domain.Pool, 0, len(inPools))
	for _, pool := range inPools {
		if pool.HasToken(tokenOut) {
			matched = append(matched, pool)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].LiquidityFloat() > matched[j].LiquidityFloat()
	})

	f.log.Debug().
		Str("token_in", tokenIn).
		Str("token_out", tokenOut).
		Int("matched", len(matched)).
		Msg("pair pools resolved")
	return matched
}
