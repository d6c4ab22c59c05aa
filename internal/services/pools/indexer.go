package pools

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/shahswap/route-engine/internal/common"
	"github.com/shahswap/route-engine/internal/domain"
)

// poolsQuery asks the indexer for the deepest pools listing a token,
// filtered server-side by liquidity and capped in count.
const poolsQuery = `query PoolsForToken($token: String!, $minLiquidity: String!, $first: Int!) {
  pools(
    first: $first
    orderBy: totalLiquidity
    orderDirection: desc
    where: { tokensList_contains: [$token], totalLiquidity_gt: $minLiquidity }
  ) {
    id
    address
    poolType
    swapFee
    totalWeight
    amp
    totalLiquidity
    tokens {
      address
      symbol
      decimals
      weight
      balance
    }
  }
}`

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlResponse struct {
	Data struct {
		Pools []gqlPool `json:"pools"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type gqlPool struct {
	ID             string     `json:"id"`
	Address        string     `json:"address"`
	PoolType       string     `json:"poolType"`
	SwapFee        string     `json:"swapFee"`
	TotalWeight    string     `json:"totalWeight"`
	Amp            string     `json:"amp"`
	TotalLiquidity string     `json:"totalLiquidity"`
	Tokens         []gqlToken `json:"tokens"`
}

type gqlToken struct {
	Address  string  `json:"address"`
	Symbol   string  `json:"symbol"`
	Decimals uint8   `json:"decimals"`
	Weight   *string `json:"weight"`
	Balance  string  `json:"balance"`
}

// IndexerClient fetches pool snapshots from the pool indexer's GraphQL
// endpoint.
type IndexerClient struct {
	url          string
	minLiquidity string
	maxPools     int
	httpClient   *http.Client
	log          zerolog.Logger
}

func NewIndexerClient(url, minLiquidity string, maxPools int, timeout time.Duration) *IndexerClient {
	return &IndexerClient{
		url:          url,
		minLiquidity: minLiquidity,
		maxPools:     maxPools,
		httpClient:   &http.Client{Timeout: timeout},
		log:          common.GetForComponent("pool-indexer"),
	}
}

// PoolsForToken queries the indexer for pools listing the given token.
// Malformed individual pool records are skipped with a warning; a
// transport or decode failure fails the whole fetch.
func (c *IndexerClient) PoolsForToken(ctx context.Context, token string) ([]*domain.Pool, error) {
	body, err := sonic.Marshal(gqlRequest{
		Query: poolsQuery,
		Variables: map[string]any{
			"token":        token,
			"minLiquidity": c.minLiquidity,
			"first":        c.maxPools,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode indexer query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build indexer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("indexer request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("indexer returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read indexer response: %w", err)
	}

	var decoded gqlResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode indexer response: %w", err)
	}
	if len(decoded.Errors) > 0 {
		return nil, fmt.Errorf("indexer error: %s", decoded.Errors[0].Message)
	}

	now := time.Now().Unix()
	result := make([]*domain.Pool, 0, len(decoded.Data.Pools))
	for _, gp := range decoded.Data.Pools {
		pool, err := c.mapPool(gp, now)
		if err != nil {
			c.log.Warn().
				Str("pool_id", gp.ID).
				Err(err).
				Msg("skipping malformed pool record")
			continue
		}
		result = append(result, pool)
	}
	return result, nil
}

func (c *IndexerClient) mapPool(gp gqlPool, now int64) (*domain.Pool, error) {
	if gp.ID == "" || gp.Address == "" {
		return nil, fmt.Errorf("pool record missing identity")
	}

	swapFee, err := sdkmath.LegacyNewDecFromStr(gp.SwapFee)
	if err != nil {
		return nil, fmt.Errorf("malformed swapFee %q: %w", gp.SwapFee, err)
	}

	poolType := domain.ParsePoolType(gp.PoolType)
	var curve domain.CurveParams
	switch poolType {
	case domain.PoolTypeWeighted:
		tw, err := sdkmath.LegacyNewDecFromStr(gp.TotalWeight)
		if err != nil {
			return nil, fmt.Errorf("malformed totalWeight %q: %w", gp.TotalWeight, err)
		}
		curve = domain.WeightedParams{TotalWeight: tw}
	case domain.PoolTypeStable, domain.PoolTypeComposableStable:
		var amp sdkmath.LegacyDec
		if gp.Amp != "" {
			amp, err = sdkmath.LegacyNewDecFromStr(gp.Amp)
			if err != nil {
				return nil, fmt.Errorf("malformed amp %q: %w", gp.Amp, err)
			}
		}
		curve = domain.StableParams{Amplification: amp}
	}

	tokens := make([]domain.PoolToken, 0, len(gp.Tokens))
	for _, gt := range gp.Tokens {
		pt := domain.PoolToken{
			Address:  gt.Address,
			Symbol:   gt.Symbol,
			Decimals: gt.Decimals,
			Balance:  gt.Balance,
		}
		if gt.Weight != nil {
			w, err := sdkmath.LegacyNewDecFromStr(*gt.Weight)
			if err != nil {
				return nil, fmt.Errorf("malformed weight %q for token %s: %w", *gt.Weight, gt.Address, err)
			}
			pt.Weight = &w
		}
		tokens = append(tokens, pt)
	}

	return &domain.Pool{
		ID:             gp.ID,
		Address:        gp.Address,
		Type:           poolType,
		Tokens:         tokens,
		TotalLiquidity: gp.TotalLiquidity,
		SwapFee:        swapFee,
		Curve:          curve,
		LastUpdate:     now,
	}, nil
}
