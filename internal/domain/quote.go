package domain

import (
	"errors"
	"math/big"
	"strings"
)

// Route source identifiers used as keys in BestQuoteResult.Alternatives.
const (
	SourcePrimary = "shahswap"
	SourcePools   = "pools"
)

var (
	ErrInvalidAmount = errors.New("amountIn must be a positive integer")
	ErrSameToken     = errors.New("tokenIn and tokenOut must differ")
	ErrMissingToken  = errors.New("tokenIn and tokenOut are required")
)

// QuoteRequest asks for the expected output of swapping AmountIn of
// TokenIn into TokenOut. AmountIn is in raw base units (wei-equivalent).
type QuoteRequest struct {
	TokenIn     string
	TokenOut    string
	AmountIn    *big.Int
	SlippageBps uint16
}

func (r *QuoteRequest) Validate() error {
	if r.TokenIn == "" || r.TokenOut == "" {
		return ErrMissingToken
	}
	if strings.EqualFold(r.TokenIn, r.TokenOut) {
		return ErrSameToken
	}
	if r.AmountIn == nil || r.AmountIn.Sign() <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Quote is a single source's answer to a QuoteRequest. AmountOut is in
// raw base units of TokenOut, already adjusted by whatever slippage the
// source applies (EffectiveSlippageBps records it).
type Quote struct {
	AmountOut            *big.Int
	PriceImpactBps       uint16
	RouteLabel           string
	HopCount             int
	EffectiveSlippageBps uint16
	SourcePool           *Pool // nil unless the quote came from a liquidity pool
}

// BestQuoteResult is the route selector's verdict: the winning source
// plus every source that produced a valid quote, winner included.
type BestQuoteResult struct {
	ChosenSource string
	ChosenQuote  *Quote
	Alternatives map[string]*Quote
}

// SkipReason explains why a candidate pool produced no quote.
type SkipReason uint8

const (
	SkipNone SkipReason = iota
	SkipUnsupportedType
	SkipMissingWeight
	SkipMalformedBalance
	SkipTokenNotInPool
	SkipCalculationFailed
	SkipPriceImpactExceeded
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipUnsupportedType:
		return "unsupported_pool_type"
	case SkipMissingWeight:
		return "missing_weight"
	case SkipMalformedBalance:
		return "malformed_balance"
	case SkipTokenNotInPool:
		return "token_not_in_pool"
	case SkipCalculationFailed:
		return "calculation_failed"
	case SkipPriceImpactExceeded:
		return "price_impact_exceeded"
	default:
		return "unknown"
	}
}

// PoolOutcome is the per-pool result of a multi-pool quoting pass:
// either a quote or the reason the pool was skipped.
type PoolOutcome struct {
	Pool  *Pool
	Quote *Quote
	Skip  SkipReason
}

// PoolQuoteReport aggregates every candidate pool's outcome so callers
// can tell "no pools found" apart from "all pools rejected".
type PoolQuoteReport struct {
	Outcomes []PoolOutcome
}

// Quotes returns the successful quotes in outcome order.
func (r *PoolQuoteReport) Quotes() []*Quote {
	quotes := make([]*Quote, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Quote != nil {
			quotes = append(quotes, o.Quote)
		}
	}
	return quotes
}

// SkipCount returns how many pools were skipped for the given reason.
func (r *PoolQuoteReport) SkipCount(reason SkipReason) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Skip == reason {
			n++
		}
	}
	return n
}
