package router

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/shahswap/route-engine/internal/common"
	"github.com/shahswap/route-engine/internal/domain"
	"github.com/shahswap/route-engine/internal/metrics"
	"github.com/shahswap/route-engine/internal/services/pricing"
)

// PairSource yields the candidate pools for a trading pair, deepest
// liquidity first.
type PairSource interface {
	PoolsForPair(ctx context.Context, tokenIn, tokenOut string) []*domain.Pool
}

// PoolQuoter prices a request against every candidate pool. Per-pool
// failures never abort the batch: each pool either yields a quote or a
// skip reason.
type PoolQuoter struct {
	pairs              PairSource
	impactThresholdBps uint16
	maxSlippageBps     uint16
	log                zerolog.Logger
}

func NewPoolQuoter(pairs PairSource, impactThresholdBps, maxSlippageBps uint16) *PoolQuoter {
	return &PoolQuoter{
		pairs:              pairs,
		impactThresholdBps: impactThresholdBps,
		maxSlippageBps:     maxSlippageBps,
		log:                common.GetForComponent("pool-quoter"),
	}
}

// GetPoolQuoteReport prices each candidate pool and records the outcome
// per pool, so callers can distinguish "no pools found" from "all pools
// rejected".
func (q *PoolQuoter) GetPoolQuoteReport(ctx context.Context, req *domain.QuoteRequest) *domain.PoolQuoteReport {
	pools := q.pairs.PoolsForPair(ctx, req.TokenIn, req.TokenOut)
	slippage := ClampBps(req.SlippageBps, q.maxSlippageBps)

	report := &domain.PoolQuoteReport{Outcomes: make([]domain.PoolOutcome, 0, len(pools))}
	for _, pool := range pools {
		quote, skip := q.quotePool(pool, req, slippage)
		if skip != domain.SkipNone {
			q.log.Debug().
				Str("pool_id", pool.ID).
				Str("reason", skip.String()).
				Msg("pool skipped")
		}
		report.Outcomes = append(report.Outcomes, domain.PoolOutcome{Pool: pool, Quote: quote, Skip: skip})
	}
	return report
}

// GetAllPoolQuotes returns every successful pool quote, sorted by
// post-slippage output descending.
func (q *PoolQuoter) GetAllPoolQuotes(ctx context.Context, req *domain.QuoteRequest) []*domain.Quote {
	quotes := q.GetPoolQuoteReport(ctx, req).Quotes()
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].AmountOut.Cmp(quotes[j].AmountOut) > 0
	})
	return quotes
}

// GetBestPoolQuote returns the pool quote with the highest
// post-slippage output, or nil when no candidate survives. Ties go to
// the first-encountered pool, which is deterministic given the pair
// finder's liquidity ordering.
func (q *PoolQuoter) GetBestPoolQuote(ctx context.Context, req *domain.QuoteRequest) *domain.Quote {
	var best *domain.Quote
	for _, quote := range q.GetPoolQuoteReport(ctx, req).Quotes() {
		if best == nil || quote.AmountOut.Cmp(best.AmountOut) > 0 {
			best = quote
		}
	}
	return best
}

func (q *PoolQuoter) quotePool(pool *domain.Pool, req *domain.QuoteRequest, slippageBps uint16) (*domain.Quote, domain.SkipReason) {
	tokenIn, okIn := pool.Token(req.TokenIn)
	tokenOut, okOut := pool.Token(req.TokenOut)
	if !okIn || !okOut {
		return nil, domain.SkipTokenNotInPool
	}

	balanceIn, err := pricing.ParseBalance(tokenIn.Balance)
	if err != nil {
		return nil, domain.SkipMalformedBalance
	}
	balanceOut, err := pricing.ParseBalance(tokenOut.Balance)
	if err != nil {
		return nil, domain.SkipMalformedBalance
	}

	amountIn := pricing.DecFromRaw(req.AmountIn, tokenIn.Decimals)

	var result pricing.SwapResult
	switch curve := pool.Curve.(type) {
	case domain.WeightedParams:
		if tokenIn.Weight == nil || tokenOut.Weight == nil {
			return nil, domain.SkipMissingWeight
		}
		result, err = pricing.WeightedSwapOut(pricing.WeightedPoolState{
			BalanceIn:  balanceIn,
			BalanceOut: balanceOut,
			WeightIn:   *tokenIn.Weight,
			WeightOut:  *tokenOut.Weight,
			SwapFee:    pool.SwapFee,
		}, amountIn)
	case domain.StableParams:
		result, err = pricing.StableSwapOut(pricing.StablePoolState{
			BalanceIn:     balanceIn,
			BalanceOut:    balanceOut,
			Amplification: curve.Amplification,
			SwapFee:       pool.SwapFee,
		}, amountIn)
	default:
		return nil, domain.SkipUnsupportedType
	}
	if err != nil {
		return nil, domain.SkipCalculationFailed
	}

	if result.PriceImpactBps > q.impactThresholdBps {
		return nil, domain.SkipPriceImpactExceeded
	}
	metrics.PriceImpact.
		WithLabelValues(string(GetPriceImpactSeverity(result.PriceImpactBps))).
		Observe(float64(result.PriceImpactBps))

	amountOut := ApplyBps(pricing.RawFromDec(result.AmountOut, tokenOut.Decimals), slippageBps)
	if amountOut.Sign() <= 0 {
		return nil, domain.SkipCalculationFailed
	}

	return &domain.Quote{
		AmountOut:            amountOut,
		PriceImpactBps:       result.PriceImpactBps,
		RouteLabel:           fmt.Sprintf("%s %s", pool.Type, shortAddress(pool.Address)),
		HopCount:             1,
		EffectiveSlippageBps: slippageBps,
		SourcePool:           pool,
	}, domain.SkipNone
}

func shortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:8] + "…" + addr[len(addr)-4:]
}
