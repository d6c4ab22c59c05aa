package router

import (
	"math/big"
	"testing"
)

func TestClampBps(t *testing.T) {
	tests := []struct {
		requested, max, want uint16
	}{
		{50, 500, 50},
		{500, 500, 500},
		{2000, 500, 500},
		{0, 500, 0},
	}
	for _, tt := range tests {
		if got := ClampBps(tt.requested, tt.max); got != tt.want {
			t.Errorf("ClampBps(%d, %d) = %d, want %d", tt.requested, tt.max, got, tt.want)
		}
	}
}

func TestApplyBps(t *testing.T) {
	oneToken, _ := new(big.Int).SetString("1000000000000000000", 10)

	got := ApplyBps(oneToken, 50)
	want, _ := new(big.Int).SetString("995000000000000000", 10)
	if got.Cmp(want) != 0 {
		t.Errorf("ApplyBps(1e18, 50) = %s, want %s", got, want)
	}

	if got := ApplyBps(oneToken, 0); got.Cmp(oneToken) != 0 {
		t.Errorf("ApplyBps(x, 0) = %s, want identity", got)
	}

	if got := ApplyBps(nil, 50); got != nil {
		t.Errorf("ApplyBps(nil, 50) = %v, want nil", got)
	}

	if got := ApplyBps(big.NewInt(0), 50); got.Sign() != 0 {
		t.Errorf("ApplyBps(0, 50) = %s, want 0", got)
	}
}

func TestApplyBpsBeyond256Bits(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 300)

	got := ApplyBps(huge, 50)
	want := new(big.Int).Mul(huge, big.NewInt(9950))
	want.Div(want, big.NewInt(10000))
	if got.Cmp(want) != 0 {
		t.Errorf("ApplyBps(2^300, 50) = %s, want %s", got, want)
	}
}
