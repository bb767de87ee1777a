package router

import (
	"NFTMarketLedger/src/controller"
	"NFTMarketLedger/src/middleware"
	"NFTMarketLedger/src/svc"

	"github.com/gin-gonic/gin"
)

func initV1Route(router *gin.Engine, serverCtx *svc.ServerCtx) {
	apiV1 := router.Group("/api/v1")

	user := apiV1.Group("/user")
	user.GET("/:address/login-message", controller.UserLoginMsgHandler(serverCtx)) // nonce message to sign
	user.POST("/login", controller.UserLoginHandler(serverCtx))                    // verify signature, issue session token
	user.GET("/:address/sig-status", controller.GetSigStatusHandler(serverCtx))

	collections := apiV1.Group("/collections")
	collections.POST("", controller.CreateCollectionHandler(serverCtx))                  // register a collection
	collections.POST("/:address/tokens", controller.CreateTokenHandler(serverCtx))       // mint the next token
	collections.GET("/ranking", controller.TopRankingHandler(serverCtx))                 // collections by traded volume
	collections.GET("/:address", middleware.CacheApi(serverCtx.KvStore, 60),
		controller.CollectionDetailHandler(serverCtx))
	collections.GET("/:address/items", controller.CollectionItemsHandler(serverCtx))
	collections.GET("/:address/history-sales", controller.HistorySalesHandler(serverCtx)) // confirmed trades in a window
	collections.GET("/:address/:token_id", controller.ItemDetailHandler(serverCtx))
	collections.GET("/:address/:token_id/nonce", controller.TokenNonceHandler(serverCtx))
	collections.GET("/:address/:token_id/bids", controller.ItemOffersHandler(serverCtx))
	collections.GET("/:address/:token_id/owner", controller.ItemOwnerHandler(serverCtx))

	permits := apiV1.Group("/permits")
	permits.POST("/grant", controller.GrantPermissionHandler(serverCtx))
	permits.POST("/revoke", controller.RevokePermissionHandler(serverCtx))

	orders := apiV1.Group("/orders")
	orders.POST("/listings", controller.ListForSaleHandler(serverCtx))
	orders.GET("/listings/:address/:token_id", controller.ListingDetailHandler(serverCtx))
	orders.DELETE("/listings/:address/:token_id", controller.WithdrawFromSaleHandler(serverCtx))
	orders.POST("/listings/buy", controller.BuyItemHandler(serverCtx))
	orders.POST("/offers", controller.MakeOfferHandler(serverCtx))
	orders.DELETE("/offers/:address/:token_id", controller.WithdrawOfferHandler(serverCtx))
	orders.POST("/offers/reject", controller.RejectOfferHandler(serverCtx))
	orders.POST("/offers/approve", controller.ApproveOfferHandler(serverCtx))

	activities := apiV1.Group("/activities")
	activities.GET("", controller.ActivityListHandler(serverCtx))

	portfolio := apiV1.Group("/portfolio")
	portfolio.Use(middleware.CheckLogin(serverCtx.KvStore))
	portfolio.GET("/:address/items", controller.UserItemsHandler(serverCtx))

	balance := apiV1.Group("/balance")
	balance.GET("/:address", controller.BalanceHandler(serverCtx))
	balance.POST("/deposit", controller.DepositFundsHandler(serverCtx))
	balance.POST("/withdraw", controller.WithdrawFundsHandler(serverCtx))
}
