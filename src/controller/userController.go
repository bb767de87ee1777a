package controller

import (
	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/pkg/xhttp"
	"NFTMarketLedger/src/service"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/utils"

	"github.com/gin-gonic/gin"
)

// UserLoginMsgHandler hands out the nonce message a wallet must sign.
func UserLoginMsgHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if !utils.IsValidAddress(address) {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetLoginMessage(c.Request.Context(), serverCtx, address)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// UserLoginHandler verifies a signed login message and issues a session token.
func UserLoginHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.LoginReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if !utils.IsValidAddress(req.Address) || req.Signature == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.UserLogin(c.Request.Context(), serverCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// GetSigStatusHandler reports whether an address has completed a login.
func GetSigStatusHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if !utils.IsValidAddress(address) {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetUserSignStatus(c.Request.Context(), serverCtx, address)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
