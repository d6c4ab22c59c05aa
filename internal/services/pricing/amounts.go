package pricing

import (
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
)

func pow10(decimals uint8) sdkmath.Int {
	return sdkmath.NewIntWithDecimal(1, int(decimals))
}

// DecFromRaw converts a raw integer amount into decimal token units.
func DecFromRaw(raw *big.Int, decimals uint8) sdkmath.LegacyDec {
	return sdkmath.LegacyNewDecFromBigInt(raw).QuoInt(pow10(decimals))
}

// RawFromDec converts decimal token units back into a raw integer
// amount, truncating toward zero.
func RawFromDec(d sdkmath.LegacyDec, decimals uint8) *big.Int {
	return d.MulInt(pow10(decimals)).TruncateInt().BigInt()
}

// ParseBalance parses a decimal-string balance as reported by the
// indexer.
func ParseBalance(s string) (sdkmath.LegacyDec, error) {
	d, err := sdkmath.LegacyNewDecFromStr(s)
	if err != nil {
		return sdkmath.LegacyDec{}, fmt.Errorf("malformed balance %q: %w", s, err)
	}
	return d, nil
}
