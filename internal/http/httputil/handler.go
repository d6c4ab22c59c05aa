package httputil

import "github.com/gin-gonic/gin"

// IHttpHandler is a route bundle mounted under a shared root path.
// Each handler registers its public and admin routes itself.
type IHttpHandler interface {
	Root() string
	SetRoutes(pub *gin.RouterGroup, admin *gin.RouterGroup)
}
