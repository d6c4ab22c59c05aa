package pricing

import (
	sdkmath "cosmossdk.io/math"
)

// DefaultAmplification is assumed when a stable pool reports none.
var DefaultAmplification = sdkmath.LegacyNewDec(100)

var ampBase = sdkmath.LegacyNewDec(100)

// StablePoolState is a two-token view of a stable pool, in decimal
// token units.
type StablePoolState struct {
	BalanceIn     sdkmath.LegacyDec
	BalanceOut    sdkmath.LegacyDec
	Amplification sdkmath.LegacyDec
	SwapFee       sdkmath.LegacyDec
}

// StableSwapOut prices a swap against a stable pool using an amplified
// constant-sum approximation: the pre-fee output is the input amount
// scaled by amplification/100. This is deliberately not bit-exact
// StableSwap math, and its price impact metric (amountIn/BalanceIn in
// bps) is cruder than the weighted model's; the two are not comparable.
func StableSwapOut(pool StablePoolState, amountIn sdkmath.LegacyDec) (SwapResult, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return SwapResult{}, ErrNonPositiveAmount
	}
	if !pool.BalanceIn.IsPositive() || !pool.BalanceOut.IsPositive() {
		return SwapResult{}, ErrZeroBalance
	}

	amp := pool.Amplification
	if amp.IsNil() || !amp.IsPositive() {
		amp = DefaultAmplification
	}

	rawOut := amountIn.Mul(amp.Quo(ampBase))
	if rawOut.GTE(pool.BalanceOut) {
		return SwapResult{}, ErrInsufficientLiquidity
	}
	outAfterFee := rawOut.Mul(oneDec.Sub(pool.SwapFee))
	if !outAfterFee.IsPositive() {
		return SwapResult{}, ErrInsufficientLiquidity
	}

	impact := amountIn.Quo(pool.BalanceIn).Mul(bpsPerUnit)

	return SwapResult{AmountOut: outAfterFee, PriceImpactBps: bpsFromDec(impact)}, nil
}
