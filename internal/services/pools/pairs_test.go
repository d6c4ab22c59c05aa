package pools

import (
	"context"
	"strings"
	"testing"

	"github.com/shahswap/route-engine/internal/domain"
)

type stubPoolSource struct {
	byToken map[string][]*domain.Pool
}

func (s *stubPoolSource) PoolsForToken(ctx context.Context, token string) []*domain.Pool {
	return s.byToken[strings.ToLower(token)]
}

func pairPool(id, liquidity string, tokenAddrs ...string) *domain.Pool {
	tokens := make([]domain.PoolToken, len(tokenAddrs))
	for i, addr := range tokenAddrs {
		tokens[i] = domain.PoolToken{Address: addr, Balance: "1000"}
	}
	return &domain.Pool{ID: id, Address: "0x" + id, Tokens: tokens, TotalLiquidity: liquidity}
}

func TestPairFinderMatchesAndSorts(t *testing.T) {
	shallow := pairPool("shallow", "5000", "0xAAA", "0xBBB")
	deep := pairPool("deep", "90000", "0xaaa", "0xbbb")
	unrelated := pairPool("other", "70000", "0xAAA", "0xCCC")

	finder := NewPairFinder(&stubPoolSource{byToken: map[string][]*domain.Pool{
		"0xaaa": {shallow, unrelated, deep},
		"0xbbb": {shallow, deep},
	}})

	got := finder.PoolsForPair(context.Background(), "0xAaA", "0xBbB")
	if len(got) != 2 {
		t.Fatalf("matched %d pools, want 2", len(got))
	}
	if got[0].ID != "deep" || got[1].ID != "shallow" {
		t.Errorf("wrong liquidity ordering: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestPairFinderNoCommonPool(t *testing.T) {
	finder := NewPairFinder(&stubPoolSource{byToken: map[string][]*domain.Pool{
		"0xaaa": {pairPool("only-a", "100", "0xAAA", "0xCCC")},
	}})

	got := finder.PoolsForPair(context.Background(), "0xAAA", "0xBBB")
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d pools", len(got))
	}
}
