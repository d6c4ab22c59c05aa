package router

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/shahswap/route-engine/internal/common"
	"github.com/shahswap/route-engine/internal/domain"
)

// routerABI is the getAmountsOut fragment of the ShahSwap router.
const routerABI = `[{"inputs":[{"internalType":"uint256","name":"amountIn","type":"uint256"},{"internalType":"address[]","name":"path","type":"address[]"}],"name":"getAmountsOut","outputs":[{"internalType":"uint256[]","name":"amounts","type":"uint256[]"}],"stateMutability":"view","type":"function"}]`

// primaryNominalSlippageBps is the fixed tolerance the primary venue
// advertises on its quotes. Caller-supplied slippage is not applied to
// this source; only pool-sourced quotes honor it.
const primaryNominalSlippageBps uint16 = 100

// ContractCaller is the read-only subset of the EVM client the quoter
// needs.
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// PrimaryQuoter prices a request through the ShahSwap router contract's
// getAmountsOut view call over the direct [tokenIn, tokenOut] path.
type PrimaryQuoter struct {
	caller ContractCaller
	router ethcommon.Address
	abi    abi.ABI
	log    zerolog.Logger
}

func NewPrimaryQuoter(caller ContractCaller, routerAddress string) (*PrimaryQuoter, error) {
	if !ethcommon.IsHexAddress(routerAddress) {
		return nil, errors.New("invalid router address")
	}
	parsed, err := abi.JSON(strings.NewReader(routerABI))
	if err != nil {
		return nil, fmt.Errorf("parse router ABI: %w", err)
	}
	return &PrimaryQuoter{
		caller: caller,
		router: ethcommon.HexToAddress(routerAddress),
		abi:    parsed,
		log:    common.GetForComponent("primary-quoter"),
	}, nil
}

// GetPrimaryQuote asks the router contract for the expected output.
// Any failure — invalid token address, call error, empty or zero
// result — yields nil, never an error: "no quote from this source" is
// a normal outcome.
func (q *PrimaryQuoter) GetPrimaryQuote(ctx context.Context, req *domain.QuoteRequest) *domain.Quote {
	if !ethcommon.IsHexAddress(req.TokenIn) || !ethcommon.IsHexAddress(req.TokenOut) {
		q.log.Debug().
			Str("token_in", req.TokenIn).
			Str("token_out", req.TokenOut).
			Msg("non-hex token address, primary venue cannot quote")
		return nil
	}

	path := []ethcommon.Address{
		ethcommon.HexToAddress(req.TokenIn),
		ethcommon.HexToAddress(req.TokenOut),
	}
	data, err := q.abi.Pack("getAmountsOut", req.AmountIn, path)
	if err != nil {
		q.log.Warn().Err(err).Msg("pack getAmountsOut failed")
		return nil
	}

	ret, err := q.caller.CallContract(ctx, ethereum.CallMsg{To: &q.router, Data: data}, nil)
	if err != nil {
		q.log.Warn().Err(err).Msg("getAmountsOut call failed")
		return nil
	}
	if len(ret) == 0 {
		return nil
	}

	unpacked, err := q.abi.Unpack("getAmountsOut", ret)
	if err != nil {
		q.log.Warn().Err(err).Msg("unpack getAmountsOut failed")
		return nil
	}
	amounts, ok := unpacked[0].([]*big.Int)
	if !ok || len(amounts) < 2 {
		return nil
	}
	amountOut := amounts[len(amounts)-1]
	if amountOut == nil || amountOut.Sign() <= 0 {
		return nil
	}

	return &domain.Quote{
		AmountOut:            amountOut,
		PriceImpactBps:       0,
		RouteLabel:           "ShahSwap",
		HopCount:             1,
		EffectiveSlippageBps: primaryNominalSlippageBps,
	}
}
