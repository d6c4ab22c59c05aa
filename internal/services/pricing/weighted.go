package pricing

import (
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
)

var (
	ErrNonPositiveAmount     = errors.New("amount in must be positive")
	ErrZeroBalance           = errors.New("pool balances must be positive")
	ErrZeroWeight            = errors.New("token weights must be positive")
	ErrInsufficientLiquidity = errors.New("insufficient pool liquidity for amount")
)

var (
	oneDec       = sdkmath.LegacyOneDec()
	twoDec       = sdkmath.LegacyNewDec(2)
	bpsPerUnit   = sdkmath.LegacyNewDec(10000)
	powPrecision = sdkmath.LegacyNewDecWithPrec(1, 14)
)

// powIterationLimit bounds the binomial series; the series converges
// well before this for any base the swap math can produce.
const powIterationLimit = 100000

// WeightedPoolState is a two-token view of a weighted pool, in decimal
// token units.
type WeightedPoolState struct {
	BalanceIn  sdkmath.LegacyDec
	BalanceOut sdkmath.LegacyDec
	WeightIn   sdkmath.LegacyDec
	WeightOut  sdkmath.LegacyDec
	SwapFee    sdkmath.LegacyDec
}

// SwapResult is the priced outcome of a single-pool swap, pre-slippage.
type SwapResult struct {
	AmountOut      sdkmath.LegacyDec
	PriceImpactBps uint16
}

// WeightedSwapOut prices a swap against a weighted pool holding the
// invariant K = BalanceIn^WeightIn * BalanceOut^WeightOut constant:
//
//	out = BalanceOut * (1 - (BalanceIn / (BalanceIn + in))^(WeightIn/WeightOut))
//
// The swap fee is charged on the output. Price impact is the relative
// deviation of the execution price (out/in, after fee) from the spot
// price (BalanceOut/BalanceIn), in basis points.
func WeightedSwapOut(pool WeightedPoolState, amountIn sdkmath.LegacyDec) (SwapResult, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return SwapResult{}, ErrNonPositiveAmount
	}
	if !pool.BalanceIn.IsPositive() || !pool.BalanceOut.IsPositive() {
		return SwapResult{}, ErrZeroBalance
	}
	if pool.WeightIn.IsNil() || pool.WeightOut.IsNil() ||
		!pool.WeightIn.IsPositive() || !pool.WeightOut.IsPositive() {
		return SwapResult{}, ErrZeroWeight
	}

	ratio := pool.BalanceIn.Quo(pool.BalanceIn.Add(amountIn))
	exponent := pool.WeightIn.Quo(pool.WeightOut)
	kept, err := decPow(ratio, exponent)
	if err != nil {
		return SwapResult{}, err
	}

	rawOut := pool.BalanceOut.Mul(oneDec.Sub(kept))
	if rawOut.GTE(pool.BalanceOut) {
		return SwapResult{}, ErrInsufficientLiquidity
	}
	outAfterFee := rawOut.Mul(oneDec.Sub(pool.SwapFee))
	if !outAfterFee.IsPositive() {
		return SwapResult{}, ErrInsufficientLiquidity
	}

	spot := pool.BalanceOut.Quo(pool.BalanceIn)
	exec := outAfterFee.Quo(amountIn)
	impact := spot.Sub(exec).Abs().Quo(spot).Mul(bpsPerUnit)

	return SwapResult{AmountOut: outAfterFee, PriceImpactBps: bpsFromDec(impact)}, nil
}

func bpsFromDec(d sdkmath.LegacyDec) uint16 {
	if d.IsNegative() {
		return 0
	}
	if d.GTE(sdkmath.LegacyNewDec(65535)) {
		return 65535
	}
	return uint16(d.TruncateInt64())
}

// decPow computes base^exp for 0 < base < 2 and exp >= 0, splitting the
// exponent into an integer power and a binomial-series fractional part.
func decPow(base, exp sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if !base.IsPositive() || base.GTE(twoDec) {
		return sdkmath.LegacyDec{}, fmt.Errorf("pow base %s outside (0, 2)", base)
	}
	integer := exp.TruncateDec()
	fractional := exp.Sub(integer)
	result := base.Power(uint64(integer.TruncateInt64()))
	if fractional.IsZero() {
		return result, nil
	}
	fracPow, err := powApprox(base, fractional)
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}
	return result.Mul(fracPow), nil
}

// powApprox evaluates base^exp for fractional exp via the generalized
// binomial series around 1, truncated once terms drop below
// powPrecision.
func powApprox(base, exp sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if exp.IsZero() {
		return oneDec, nil
	}

	x, xneg := absDifferenceWithSign(base, oneDec)
	term := oneDec
	sum := oneDec
	negative := false

	for i := int64(1); term.GTE(powPrecision); i++ {
		if i > powIterationLimit {
			return sdkmath.LegacyDec{}, fmt.Errorf("pow series did not converge for base %s", base)
		}
		bigK := sdkmath.LegacyNewDec(i)
		c, cneg := absDifferenceWithSign(exp, bigK.Sub(oneDec))
		term = term.Mul(c.Mul(x)).Quo(bigK)
		if term.IsZero() {
			break
		}
		if xneg {
			negative = !negative
		}
		if cneg {
			negative = !negative
		}
		if negative {
			sum = sum.Sub(term)
		} else {
			sum = sum.Add(term)
		}
	}
	return sum, nil
}

func absDifferenceWithSign(a, b sdkmath.LegacyDec) (sdkmath.LegacyDec, bool) {
	if a.GTE(b) {
		return a.Sub(b), false
	}
	return b.Sub(a), true
}
