package router

import (
	"NFTMarketLedger/src/middleware"
	"NFTMarketLedger/src/svc"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the recovery, request-log and cors
// middleware, then mounts the v1 api.
func NewRouter(serverCtx *svc.ServerCtx) *gin.Engine {
	gin.ForceConsoleColor()
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RecoverMiddleware())
	router.Use(middleware.RLog())
	router.Use(middleware.Cors())
	pprof.Register(router)
	initV1Route(router, serverCtx)
	return router
}
