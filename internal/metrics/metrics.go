package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuoteRequests counts quote attempts per source and outcome.
	QuoteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shahswap_quote_requests_total",
			Help: "Total quote requests by source and status",
		},
		[]string{"source", "status"},
	)

	// QuoteDuration measures how long each quote source takes.
	QuoteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shahswap_quote_duration_seconds",
			Help:    "Quote latency by source",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// PriceImpact tracks observed price impact of accepted pool quotes.
	PriceImpact = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shahswap_price_impact_bps",
			Help:    "Price impact of pool quotes in basis points",
			Buckets: []float64{10, 50, 100, 300, 500, 1000, 2000, 5000},
		},
		[]string{"severity"},
	)

	// RouteSelections counts which source won best-quote selection.
	RouteSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shahswap_route_selections_total",
			Help: "Best-route selections by chosen source",
		},
		[]string{"source"},
	)

	// PoolCacheHits counts cache hits on pool snapshot lookups.
	PoolCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shahswap_pool_cache_hits_total",
			Help: "Pool cache hits",
		},
	)

	// PoolCacheMisses counts cache misses (expired or absent entries).
	PoolCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shahswap_pool_cache_misses_total",
			Help: "Pool cache misses",
		},
	)

	// PoolFetchErrors counts failed indexer fetches.
	PoolFetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shahswap_pool_fetch_errors_total",
			Help: "Pool indexer fetch failures",
		},
	)

	// PoolCacheSize gauges how many token entries the cache holds.
	PoolCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shahswap_pool_cache_entries",
			Help: "Number of token entries in the pool cache",
		},
	)

	// HTTPRequests counts HTTP requests by path, method, and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shahswap_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	// HTTPDuration measures HTTP request latency by path.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shahswap_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
)
