package http

import (
	"context"
	"errors"
	gohttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/shahswap/route-engine/internal/config"
	"github.com/shahswap/route-engine/internal/http/httputil"
	"github.com/shahswap/route-engine/internal/http/middlewares"
)

const apiVersion = "v1"

// HTTPService owns the gin engine and the http.Server lifecycle.
type HTTPService struct {
	conf        *config.GeneralConfig
	rateLimiter *middlewares.RateLimiter
	server      *gohttp.Server
	handlers    []httputil.IHttpHandler
}

func NewHTTPService(conf *config.GeneralConfig, handlers ...httputil.IHttpHandler) *HTTPService {
	return &HTTPService{
		conf:        conf,
		rateLimiter: middlewares.NewRateLimiter(10, 20),
		handlers:    handlers,
	}
}

// Start builds the router and serves until Stop or a listener error.
func (svc *HTTPService) Start() error {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConf := cors.DefaultConfig()
	corsConf.AllowAllOrigins = true
	r.Use(cors.New(corsConf))

	r.Use(middlewares.MetricsMiddleware())
	r.Use(svc.rateLimiter.RateLimitMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(gohttp.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("api")
	pub := api.Group(apiVersion)
	admin := api.Group(apiVersion + "/admin")
	for _, h := range svc.handlers {
		h.SetRoutes(pub.Group(h.Root()), admin.Group(h.Root()))
	}

	svc.server = &gohttp.Server{
		Addr:    svc.conf.HTTPHost + ":" + svc.conf.HTTPPort,
		Handler: r,
	}
	log.Info().
		Str("host", svc.conf.HTTPHost).
		Str("port", svc.conf.HTTPPort).
		Msg("http server started")

	if err := svc.server.ListenAndServe(); err != nil && !errors.Is(err, gohttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests with a bounded grace period.
func (svc *HTTPService) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := svc.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to stop http server")
		return err
	}
	log.Info().Msg("http server stopped gracefully")
	return nil
}
