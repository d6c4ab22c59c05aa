package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/shahswap/route-engine/internal/common"
	"github.com/shahswap/route-engine/internal/config"
	enginehttp "github.com/shahswap/route-engine/internal/http"
	"github.com/shahswap/route-engine/internal/services/pools"
	"github.com/shahswap/route-engine/internal/services/router"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	common.InitLogger(cfg.General.LogLevel)
	if envErr != nil {
		log.Warn().Msg("no .env file found, using process environment")
	}
	if cfg.General.Env == config.ProdEnv {
		gin.SetMode(gin.ReleaseMode)
	}

	ethClient, err := ethclient.Dial(cfg.Chain.RPCURL)
	if err != nil {
		log.Fatal().Err(err).Str("rpc_url", cfg.Chain.RPCURL).Msg("failed to connect to chain RPC")
	}
	defer ethClient.Close()

	indexer := pools.NewIndexerClient(
		cfg.Chain.IndexerURL,
		cfg.Quoting.MinLiquidity,
		cfg.Quoting.MaxPools,
		cfg.Chain.IndexerTimeout,
	)
	cache := pools.NewPoolCache(indexer, cfg.Quoting.PoolCacheTTL)
	pairs := pools.NewPairFinder(cache)
	poolQuoter := router.NewPoolQuoter(
		pairs,
		cfg.Quoting.PriceImpactThresholdBps,
		cfg.Quoting.MaxPooledSlippageBps,
	)
	primaryQuoter, err := router.NewPrimaryQuoter(ethClient, cfg.Chain.RouterAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build primary quoter")
	}
	selector := router.NewRouteSelector(primaryQuoter, poolQuoter)

	svc := enginehttp.NewHTTPService(
		&cfg.General,
		enginehttp.NewQuoteHandler(selector, cfg.Quoting.DefaultSlippageBps),
		enginehttp.NewPoolHandler(cache),
	)

	go func() {
		if err := svc.Start(); err != nil {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := svc.Stop(); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
