package domain

import (
	"strconv"
	"strings"

	"cosmossdk.io/math"
)

// PoolType identifies the invariant curve a pool prices trades with.
type PoolType uint8

const (
	PoolTypeWeighted PoolType = iota
	PoolTypeStable
	PoolTypeComposableStable
	PoolTypeOther
)

func (p PoolType) String() string {
	switch p {
	case PoolTypeWeighted:
		return "Weighted"
	case PoolTypeStable:
		return "Stable"
	case PoolTypeComposableStable:
		return "ComposableStable"
	default:
		return "Other"
	}
}

// ParsePoolType maps the indexer's poolType string onto the closed enum.
// Unknown values land on PoolTypeOther and are skipped by the quoter.
func ParsePoolType(s string) PoolType {
	switch s {
	case "Weighted":
		return PoolTypeWeighted
	case "Stable":
		return PoolTypeStable
	case "ComposableStable":
		return PoolTypeComposableStable
	default:
		return PoolTypeOther
	}
}

// CurveParams carries the per-curve parameters a pool type requires.
// The set of implementations is closed: weighted pools carry a total
// weight, stable pools carry an amplification factor.
type CurveParams interface {
	isCurveParams()
}

type WeightedParams struct {
	// TotalWeight is the sum of token weights as reported upstream.
	// The quoter trusts it and never re-validates the sum.
	TotalWeight math.LegacyDec
}

func (WeightedParams) isCurveParams() {}

type StableParams struct {
	// Amplification is the pool's amplification factor. Nil or zero
	// means "not reported"; the pricing model substitutes its default.
	Amplification math.LegacyDec
}

func (StableParams) isCurveParams() {}

// PoolToken is one leg of a pool snapshot. Balance is a human-readable
// decimal string, not a raw integer amount. Weight is present only for
// weighted pools; a weighted pool token without one is invalid input
// and causes that pool alone to be skipped.
type PoolToken struct {
	Address  string
	Symbol   string
	Decimals uint8
	Weight   *math.LegacyDec
	Balance  string
}

// Pool is a point-in-time liquidity venue snapshot from the indexer.
type Pool struct {
	ID             string
	Address        string
	Type           PoolType
	Tokens         []PoolToken
	TotalLiquidity string
	SwapFee        math.LegacyDec
	Curve          CurveParams
	LastUpdate     int64
}

// Token returns the pool token matching addr, case-insensitively.
func (p *Pool) Token(addr string) (PoolToken, bool) {
	for _, t := range p.Tokens {
		if strings.EqualFold(t.Address, addr) {
			return t, true
		}
	}
	return PoolToken{}, false
}

// HasToken reports whether addr is listed among the pool's tokens.
func (p *Pool) HasToken(addr string) bool {
	_, ok := p.Token(addr)
	return ok
}

// LiquidityFloat parses TotalLiquidity for ranking purposes only.
// Monetary precision is irrelevant here: it orders candidate pools.
func (p *Pool) LiquidityFloat() float64 {
	f, err := strconv.ParseFloat(p.TotalLiquidity, 64)
	if err != nil {
		return 0
	}
	return f
}
