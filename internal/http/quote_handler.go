package http

import (
	"context"
	"math/big"

	"github.com/gin-gonic/gin"

	"github.com/shahswap/route-engine/internal/domain"
	"github.com/shahswap/route-engine/internal/http/httputil"
	"github.com/shahswap/route-engine/internal/services/router"
)

// QuoteSource produces the best available quote across all venues.
type QuoteSource interface {
	GetBestQuote(ctx context.Context, req *domain.QuoteRequest) *domain.BestQuoteResult
}

type QuoteHandler struct {
	selector           QuoteSource
	defaultSlippageBps uint16
}

func NewQuoteHandler(selector QuoteSource, defaultSlippageBps uint16) *QuoteHandler {
	return &QuoteHandler{selector: selector, defaultSlippageBps: defaultSlippageBps}
}

func (h *QuoteHandler) Root() string {
	return "/quote"
}

func (h *QuoteHandler) SetRoutes(pub *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.GET("", h.getQuote)
}

// QuoteParams are the query parameters of GET /quote.
type QuoteParams struct {
	// TokenIn and TokenOut are ERC-20 contract addresses.
	TokenIn  string `form:"tokenIn" binding:"required"`
	TokenOut string `form:"tokenOut" binding:"required"`

	// AmountIn is the input amount in raw base units, as a decimal
	// integer string.
	AmountIn string `form:"amountIn" binding:"required"`

	// SlippageBps is the caller's tolerance in basis points; defaults
	// to the configured value when omitted.
	SlippageBps uint16 `form:"slippageBps"`
}

// QuoteView is the wire form of a single source's quote.
type QuoteView struct {
	AmountOut            string `json:"amountOut"`
	PriceImpactBps       uint16 `json:"priceImpactBps"`
	PriceImpactWarning   string `json:"priceImpactWarning,omitempty"`
	RouteLabel           string `json:"routeLabel"`
	HopCount             int    `json:"hopCount"`
	EffectiveSlippageBps uint16 `json:"effectiveSlippageBps"`
	PoolID               string `json:"poolId,omitempty"`
}

// QuoteResponse reports the chosen route plus what every source
// offered, so callers can render the rejected alternatives.
type QuoteResponse struct {
	TokenIn      string               `json:"tokenIn"`
	TokenOut     string               `json:"tokenOut"`
	AmountIn     string               `json:"amountIn"`
	ChosenSource string               `json:"chosenSource"`
	Quote        QuoteView            `json:"quote"`
	Alternatives map[string]QuoteView `json:"alternatives"`
}

func (h *QuoteHandler) getQuote(c *gin.Context) {
	var params QuoteParams
	if err := c.ShouldBindQuery(&params); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	amountIn, ok := new(big.Int).SetString(params.AmountIn, 10)
	if !ok {
		httputil.BadRequest(c, "amountIn must be a decimal integer string")
		return
	}

	slippage := params.SlippageBps
	if slippage == 0 {
		slippage = h.defaultSlippageBps
	}

	req := &domain.QuoteRequest{
		TokenIn:     params.TokenIn,
		TokenOut:    params.TokenOut,
		AmountIn:    amountIn,
		SlippageBps: slippage,
	}
	if err := req.Validate(); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	result := h.selector.GetBestQuote(c.Request.Context(), req)
	if result == nil {
		httputil.NotFound(c, "no route found")
		return
	}

	alternatives := make(map[string]QuoteView, len(result.Alternatives))
	for source, quote := range result.Alternatives {
		alternatives[source] = toQuoteView(quote)
	}

	httputil.Success(c, QuoteResponse{
		TokenIn:      params.TokenIn,
		TokenOut:     params.TokenOut,
		AmountIn:     params.AmountIn,
		ChosenSource: result.ChosenSource,
		Quote:        toQuoteView(result.ChosenQuote),
		Alternatives: alternatives,
	})
}

func toQuoteView(q *domain.Quote) QuoteView {
	view := QuoteView{
		AmountOut:            q.AmountOut.String(),
		PriceImpactBps:       q.PriceImpactBps,
		PriceImpactWarning:   router.GetPriceImpactWarning(q.PriceImpactBps),
		RouteLabel:           q.RouteLabel,
		HopCount:             q.HopCount,
		EffectiveSlippageBps: q.EffectiveSlippageBps,
	}
	if q.SourcePool != nil {
		view.PoolID = q.SourcePool.ID
	}
	return view
}
