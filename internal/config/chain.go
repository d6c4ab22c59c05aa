package config

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ChainConfig points the engine at its external collaborators: the
// pool-indexing endpoint and the ShahSwap router contract.
type ChainConfig struct {
	// RPCURL is the EVM JSON-RPC endpoint for read-only router calls.
	RPCURL string

	// RouterAddress is the ShahSwap router contract (getAmountsOut).
	RouterAddress string

	// IndexerURL is the pool indexer's GraphQL endpoint.
	IndexerURL string

	// IndexerTimeout bounds each indexer fetch; a timeout is treated
	// exactly like a fetch failure.
	IndexerTimeout time.Duration
}

func (c *ChainConfig) Load() error {
	c.RPCURL = GetEnvOrDefault("CHAIN_RPC_URL", "http://localhost:8545")
	c.RouterAddress = GetEnvOrDefault("SHAHSWAP_ROUTER_ADDRESS", "")
	c.IndexerURL = GetEnvOrDefault("POOL_INDEXER_URL", "")
	c.IndexerTimeout = time.Duration(GetEnvOrDefaultInt("POOL_INDEXER_TIMEOUT_MS", 5000)) * time.Millisecond
	return c.Validate()
}

func (c *ChainConfig) Validate() error {
	if c.RPCURL == "" {
		return errors.New("chain RPC URL is required")
	}
	if c.RouterAddress != "" && !common.IsHexAddress(c.RouterAddress) {
		return errors.New("router address is not a valid hex address")
	}
	if c.IndexerTimeout <= 0 {
		return errors.New("indexer timeout must be positive")
	}
	return nil
}
