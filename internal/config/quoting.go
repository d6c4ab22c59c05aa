package config

import (
	"errors"
	"time"
)

// QuotingConfig holds the tunable policy constants of the quoting engine.
type QuotingConfig struct {
	// PoolCacheTTL is how long a token's pool snapshot set stays fresh.
	PoolCacheTTL time.Duration

	// MinLiquidity is the minimum totalLiquidity (decimal string,
	// indexer units) a pool must hold to be considered at all.
	MinLiquidity string

	// MaxPools caps how many pools are requested per token.
	MaxPools int

	// PriceImpactThresholdBps rejects pool quotes whose price impact
	// exceeds this many basis points.
	PriceImpactThresholdBps uint16

	// MaxPooledSlippageBps clamps caller-supplied slippage tolerance
	// for pool-sourced quotes.
	MaxPooledSlippageBps uint16

	// DefaultSlippageBps is applied when the caller supplies none.
	DefaultSlippageBps uint16
}

func (c *QuotingConfig) Load() error {
	c.PoolCacheTTL = time.Duration(GetEnvOrDefaultInt("POOL_CACHE_TTL_MS", 30000)) * time.Millisecond
	c.MinLiquidity = GetEnvOrDefault("POOL_MIN_LIQUIDITY", "1000")
	c.MaxPools = GetEnvOrDefaultInt("POOL_MAX_SCAN", 10)
	c.PriceImpactThresholdBps = GetEnvOrDefaultUint16("PRICE_IMPACT_THRESHOLD_BPS", 1000)
	c.MaxPooledSlippageBps = GetEnvOrDefaultUint16("MAX_POOLED_SLIPPAGE_BPS", 500)
	c.DefaultSlippageBps = GetEnvOrDefaultUint16("DEFAULT_SLIPPAGE_BPS", 50)
	return c.Validate()
}

func (c *QuotingConfig) Validate() error {
	if c.PoolCacheTTL <= 0 {
		return errors.New("pool cache TTL must be positive")
	}
	if c.MaxPools <= 0 {
		return errors.New("max pools to scan must be positive")
	}
	if c.MaxPooledSlippageBps >= 10000 {
		return errors.New("max pooled slippage must be below 10000 bps")
	}
	return nil
}
