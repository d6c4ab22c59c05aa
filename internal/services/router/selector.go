package router

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shahswap/route-engine/internal/common"
	"github.com/shahswap/route-engine/internal/domain"
	"github.com/shahswap/route-engine/internal/metrics"
)

// PrimarySource quotes through the primary exchange venue.
type PrimarySource interface {
	GetPrimaryQuote(ctx context.Context, req *domain.QuoteRequest) *domain.Quote
}

// PoolQuoteSource quotes through indexed liquidity pools.
type PoolQuoteSource interface {
	GetBestPoolQuote(ctx context.Context, req *domain.QuoteRequest) *domain.Quote
}

// RouteSelector races the two quote sources and picks the one with the
// higher output.
type RouteSelector struct {
	primary PrimarySource
	pools   PoolQuoteSource
	log     zerolog.Logger
}

func NewRouteSelector(primary PrimarySource, pools PoolQuoteSource) *RouteSelector {
	return &RouteSelector{
		primary: primary,
		pools:   pools,
		log:     common.GetForComponent("route-selector"),
	}
}

// GetBestQuote dispatches both sources concurrently and returns the one
// with the strictly greater output; ties go to the primary venue. A nil
// result means no source could quote — a normal outcome, not an error.
// Alternatives holds every source that produced a quote, winner
// included.
func (s *RouteSelector) GetBestQuote(ctx context.Context, req *domain.QuoteRequest) *domain.BestQuoteResult {
	var primaryQuote, poolQuote *domain.Quote

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		start := time.Now()
		primaryQuote = s.primary.GetPrimaryQuote(ctx, req)
		metrics.QuoteDuration.WithLabelValues(domain.SourcePrimary).Observe(time.Since(start).Seconds())
		metrics.QuoteRequests.WithLabelValues(domain.SourcePrimary, quoteStatus(primaryQuote)).Inc()
	}()
	go func() {
		defer wg.Done()
		start := time.Now()
		poolQuote = s.pools.GetBestPoolQuote(ctx, req)
		metrics.QuoteDuration.WithLabelValues(domain.SourcePools).Observe(time.Since(start).Seconds())
		metrics.QuoteRequests.WithLabelValues(domain.SourcePools, quoteStatus(poolQuote)).Inc()
	}()
	wg.Wait()

	if primaryQuote == nil && poolQuote == nil {
		s.log.Debug().
			Str("token_in", req.TokenIn).
			Str("token_out", req.TokenOut).
			Msg("no route found")
		return nil
	}

	alternatives := make(map[string]*domain.Quote, 2)
	if primaryQuote != nil {
		alternatives[domain.SourcePrimary] = primaryQuote
	}
	if poolQuote != nil {
		alternatives[domain.SourcePools] = poolQuote
	}

	source := domain.SourcePools
	chosen := poolQuote
	if primaryQuote != nil && (poolQuote == nil || primaryQuote.AmountOut.Cmp(poolQuote.AmountOut) >= 0) {
		source = domain.SourcePrimary
		chosen = primaryQuote
	}
	metrics.RouteSelections.WithLabelValues(source).Inc()

	s.log.Info().
		Str("token_in", req.TokenIn).
		Str("token_out", req.TokenOut).
		Str("chosen", source).
		Str("amount_out", chosen.AmountOut.String()).
		Uint16("price_impact_bps", chosen.PriceImpactBps).
		Msg("route selected")

	return &domain.BestQuoteResult{
		ChosenSource: source,
		ChosenQuote:  chosen,
		Alternatives: alternatives,
	}
}

func quoteStatus(q *domain.Quote) string {
	if q == nil {
		return "empty"
	}
	return "ok"
}
