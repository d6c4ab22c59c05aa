package router

import (
	"math/big"

	"github.com/holiman/uint256"
)

const bpsDenom = 10000

// ClampBps caps a caller-supplied slippage tolerance at the configured
// maximum for a quote source.
func ClampBps(requested, max uint16) uint16 {
	if requested > max {
		return max
	}
	return requested
}

// ApplyBps reduces amount by bps basis points using integer arithmetic:
// amount * (10000 - bps) / 10000. Amounts that fit 256 bits go through
// uint256; anything larger falls back to big.Int.
func ApplyBps(amount *big.Int, bps uint16) *big.Int {
	if amount == nil {
		return nil
	}
	if bps == 0 || amount.Sign() <= 0 {
		return new(big.Int).Set(amount)
	}
	keep := uint64(bpsDenom - bps)

	if u, overflow := uint256.FromBig(amount); !overflow {
		var out uint256.Int
		if _, over := out.MulDivOverflow(u, uint256.NewInt(keep), uint256.NewInt(bpsDenom)); !over {
			return out.ToBig()
		}
	}

	out := new(big.Int).Mul(amount, new(big.Int).SetUint64(keep))
	return out.Div(out, big.NewInt(bpsDenom))
}
