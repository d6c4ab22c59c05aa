package domain

import (
	"math/big"
	"testing"
)

func TestQuoteRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     QuoteRequest
		wantErr error
	}{
		{"valid", QuoteRequest{TokenIn: "0xAAA", TokenOut: "0xBBB", AmountIn: big.NewInt(1)}, nil},
		{"missing token", QuoteRequest{TokenOut: "0xBBB", AmountIn: big.NewInt(1)}, ErrMissingToken},
		{"same token", QuoteRequest{TokenIn: "0xAAA", TokenOut: "0xaaa", AmountIn: big.NewInt(1)}, ErrSameToken},
		{"nil amount", QuoteRequest{TokenIn: "0xAAA", TokenOut: "0xBBB"}, ErrInvalidAmount},
		{"zero amount", QuoteRequest{TokenIn: "0xAAA", TokenOut: "0xBBB", AmountIn: big.NewInt(0)}, ErrInvalidAmount},
		{"negative amount", QuoteRequest{TokenIn: "0xAAA", TokenOut: "0xBBB", AmountIn: big.NewInt(-5)}, ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); err != tt.wantErr {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePoolType(t *testing.T) {
	tests := []struct {
		in   string
		want PoolType
	}{
		{"Weighted", PoolTypeWeighted},
		{"Stable", PoolTypeStable},
		{"ComposableStable", PoolTypeComposableStable},
		{"Gyro", PoolTypeOther},
		{"", PoolTypeOther},
	}
	for _, tt := range tests {
		if got := ParsePoolType(tt.in); got != tt.want {
			t.Errorf("ParsePoolType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestPoolTokenLookupIsCaseInsensitive(t *testing.T) {
	pool := Pool{Tokens: []PoolToken{{Address: "0xAbCd", Balance: "10"}}}
	if !pool.HasToken("0xABCD") {
		t.Error("lookup should ignore address case")
	}
	if pool.HasToken("0xEEEE") {
		t.Error("unexpected token match")
	}
}

func TestPoolQuoteReportHelpers(t *testing.T) {
	report := PoolQuoteReport{Outcomes: []PoolOutcome{
		{Quote: &Quote{AmountOut: big.NewInt(10)}},
		{Skip: SkipMissingWeight},
		{Skip: SkipPriceImpactExceeded},
		{Skip: SkipPriceImpactExceeded},
	}}

	if got := len(report.Quotes()); got != 1 {
		t.Errorf("quotes = %d, want 1", got)
	}
	if got := report.SkipCount(SkipPriceImpactExceeded); got != 2 {
		t.Errorf("impact skips = %d, want 2", got)
	}
	if got := report.SkipCount(SkipMissingWeight); got != 1 {
		t.Errorf("weight skips = %d, want 1", got)
	}
}
