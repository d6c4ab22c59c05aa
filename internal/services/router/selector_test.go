package router

import (
	"context"
	"math/big"
	"testing"

	"github.com/shahswap/route-engine/internal/domain"
)

type stubPrimary struct {
	quote *domain.Quote
}

func (s stubPrimary) GetPrimaryQuote(ctx context.Context, req *domain.QuoteRequest) *domain.Quote {
	return s.quote
}

type stubPools struct {
	quote *domain.Quote
}

func (s stubPools) GetBestPoolQuote(ctx context.Context, req *domain.QuoteRequest) *domain.Quote {
	return s.quote
}

func quoteWithOutput(amount int64, label string) *domain.Quote {
	return &domain.Quote{
		AmountOut:  big.NewInt(amount),
		RouteLabel: label,
		HopCount:   1,
	}
}

func selectorRequest() *domain.QuoteRequest {
	return &domain.QuoteRequest{
		TokenIn:  "0xAAA",
		TokenOut: "0xBBB",
		AmountIn: big.NewInt(1000),
	}
}

func TestRouteSelectorBothSourcesEmpty(t *testing.T) {
	selector := NewRouteSelector(stubPrimary{}, stubPools{})
	if result := selector.GetBestQuote(context.Background(), selectorRequest()); result != nil {
		t.Errorf("expected nil, got %+v", result)
	}
}

func TestRouteSelectorSingleSource(t *testing.T) {
	tests := []struct {
		name       string
		primary    *domain.Quote
		pools      *domain.Quote
		wantSource string
	}{
		{"primary only", quoteWithOutput(100, "ShahSwap"), nil, domain.SourcePrimary},
		{"pools only", nil, quoteWithOutput(100, "Weighted 0xdeadbeef"), domain.SourcePools},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selector := NewRouteSelector(stubPrimary{quote: tt.primary}, stubPools{quote: tt.pools})
			result := selector.GetBestQuote(context.Background(), selectorRequest())
			if result == nil {
				t.Fatal("expected a result")
			}
			if result.ChosenSource != tt.wantSource {
				t.Errorf("chosen source = %s, want %s", result.ChosenSource, tt.wantSource)
			}
			if len(result.Alternatives) != 1 {
				t.Errorf("alternatives = %d entries, want 1 (absent source must not appear)", len(result.Alternatives))
			}
			if result.Alternatives[tt.wantSource] != result.ChosenQuote {
				t.Error("winner missing from alternatives")
			}
		})
	}
}

func TestRouteSelectorHigherOutputWins(t *testing.T) {
	tests := []struct {
		name          string
		primaryOut    int64
		poolsOut      int64
		wantSource    string
		wantAmountOut int64
	}{
		{"pools strictly greater", 100, 150, domain.SourcePools, 150},
		{"primary strictly greater", 200, 150, domain.SourcePrimary, 200},
		{"tie goes to primary", 150, 150, domain.SourcePrimary, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selector := NewRouteSelector(
				stubPrimary{quote: quoteWithOutput(tt.primaryOut, "ShahSwap")},
				stubPools{quote: quoteWithOutput(tt.poolsOut, "Weighted 0xdeadbeef")},
			)
			result := selector.GetBestQuote(context.Background(), selectorRequest())
			if result == nil {
				t.Fatal("expected a result")
			}
			if result.ChosenSource != tt.wantSource {
				t.Errorf("chosen source = %s, want %s", result.ChosenSource, tt.wantSource)
			}
			if result.ChosenQuote.AmountOut.Int64() != tt.wantAmountOut {
				t.Errorf("amount out = %s, want %d", result.ChosenQuote.AmountOut, tt.wantAmountOut)
			}
			if len(result.Alternatives) != 2 {
				t.Errorf("alternatives = %d entries, want both sources", len(result.Alternatives))
			}
			if result.Alternatives[result.ChosenSource] != result.ChosenQuote {
				t.Error("winner missing from alternatives")
			}
		})
	}
}

func TestRouteSelectorIdempotent(t *testing.T) {
	selector := NewRouteSelector(
		stubPrimary{quote: quoteWithOutput(100, "ShahSwap")},
		stubPools{quote: quoteWithOutput(150, "Weighted 0xdeadbeef")},
	)

	first := selector.GetBestQuote(context.Background(), selectorRequest())
	second := selector.GetBestQuote(context.Background(), selectorRequest())
	if first == nil || second == nil {
		t.Fatal("expected results")
	}
	if first.ChosenSource != second.ChosenSource {
		t.Errorf("chosen source changed: %s vs %s", first.ChosenSource, second.ChosenSource)
	}
	if first.ChosenQuote.AmountOut.Cmp(second.ChosenQuote.AmountOut) != 0 {
		t.Errorf("amount out changed: %s vs %s", first.ChosenQuote.AmountOut, second.ChosenQuote.AmountOut)
	}
}
