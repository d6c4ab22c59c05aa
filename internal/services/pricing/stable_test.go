package pricing

import (
	"testing"

	sdkmath "cosmossdk.io/math"
)

func TestStableSwapOutDefaultAmplification(t *testing.T) {
	pool := StablePoolState{
		BalanceIn:  dec(t, "10000"),
		BalanceOut: dec(t, "10000"),
		SwapFee:    dec(t, "0.001"),
		// Amplification left nil: the default (100) applies.
	}

	res, err := StableSwapOut(pool, dec(t, "100"))
	if err != nil {
		t.Fatalf("StableSwapOut: %v", err)
	}

	// amp/100 = 1, so pre-fee output equals input; fee takes 0.1%.
	expected := dec(t, "99.9")
	if !res.AmountOut.Equal(expected) {
		t.Errorf("amount out = %s, want %s", res.AmountOut, expected)
	}
	// impact = 100/10000 = 1% = 100 bps
	if res.PriceImpactBps != 100 {
		t.Errorf("price impact = %d bps, want 100", res.PriceImpactBps)
	}
}

func TestStableSwapOutAmplificationScalesOutput(t *testing.T) {
	base := StablePoolState{
		BalanceIn:  dec(t, "10000"),
		BalanceOut: dec(t, "10000"),
		SwapFee:    sdkmath.LegacyZeroDec(),
	}
	amountIn := dec(t, "50")

	base.Amplification = sdkmath.LegacyNewDec(100)
	at100, err := StableSwapOut(base, amountIn)
	if err != nil {
		t.Fatal(err)
	}
	base.Amplification = sdkmath.LegacyNewDec(200)
	at200, err := StableSwapOut(base, amountIn)
	if err != nil {
		t.Fatal(err)
	}

	if !at200.AmountOut.Equal(at100.AmountOut.MulInt64(2)) {
		t.Errorf("doubling amp should double output: %s vs %s", at100.AmountOut, at200.AmountOut)
	}
}

func TestStableSwapOutInsufficientLiquidity(t *testing.T) {
	pool := StablePoolState{
		BalanceIn:  dec(t, "10000"),
		BalanceOut: dec(t, "50"),
		SwapFee:    sdkmath.LegacyZeroDec(),
	}

	if _, err := StableSwapOut(pool, dec(t, "60")); err != ErrInsufficientLiquidity {
		t.Errorf("err = %v, want %v", err, ErrInsufficientLiquidity)
	}
}

func TestStableSwapOutRejectsBadInputs(t *testing.T) {
	pool := StablePoolState{
		BalanceIn:  dec(t, "10000"),
		BalanceOut: dec(t, "10000"),
	}

	if _, err := StableSwapOut(pool, sdkmath.LegacyZeroDec()); err != ErrNonPositiveAmount {
		t.Errorf("zero amount: err = %v, want %v", err, ErrNonPositiveAmount)
	}

	pool.BalanceIn = sdkmath.LegacyZeroDec()
	if _, err := StableSwapOut(pool, dec(t, "1")); err != ErrZeroBalance {
		t.Errorf("zero balance: err = %v, want %v", err, ErrZeroBalance)
	}
}
