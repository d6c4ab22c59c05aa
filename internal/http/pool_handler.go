package http

import (
	"github.com/gin-gonic/gin"

	"github.com/shahswap/route-engine/internal/http/httputil"
	"github.com/shahswap/route-engine/internal/services/pools"
)

// CacheAdmin exposes operational controls over the pool cache.
type CacheAdmin interface {
	Stats() pools.CacheStats
	Clear()
}

type PoolHandler struct {
	cache CacheAdmin
}

func NewPoolHandler(cache CacheAdmin) *PoolHandler {
	return &PoolHandler{cache: cache}
}

func (h *PoolHandler) Root() string {
	return "/pools"
}

func (h *PoolHandler) SetRoutes(pub *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.GET("/stats", h.getStats)
	admin.POST("/cache/clear", h.clearCache)
}

func (h *PoolHandler) getStats(c *gin.Context) {
	httputil.Success(c, h.cache.Stats())
}

func (h *PoolHandler) clearCache(c *gin.Context) {
	h.cache.Clear()
	httputil.Success(c, gin.H{"cleared": true})
}
