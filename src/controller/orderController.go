package controller

import (
	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/pkg/xhttp"
	"NFTMarketLedger/src/service"
	"NFTMarketLedger/src/svc"

	"github.com/gin-gonic/gin"
)

// ListForSaleHandler creates a fixed-price listing; the attached value pays
// the trading fee.
func ListForSaleHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.ListForSaleReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.ListForSale(c.Request.Context(), serverCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// WithdrawFromSaleHandler removes the caller's listing.
func WithdrawFromSaleHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, tokenId, ok := itemParams(c)
		caller := c.Query("caller")
		if !ok || caller == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.WithdrawFromSale(c.Request.Context(), serverCtx, address, tokenId, caller); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// ListingDetailHandler reads the active listing of a token.
func ListingDetailHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, tokenId, ok := itemParams(c)
		if !ok {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetListing(c.Request.Context(), serverCtx, address, tokenId)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// BuyItemHandler settles an active listing.
func BuyItemHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.BuyItemReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.BuyItem(c.Request.Context(), serverCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// MakeOfferHandler escrows a standing bid on a token.
func MakeOfferHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.MakeOfferReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.MakeOffer(c.Request.Context(), serverCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// WithdrawOfferHandler refunds the caller's own bid.
func WithdrawOfferHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, tokenId, ok := itemParams(c)
		caller := c.Query("caller")
		if !ok || caller == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.WithdrawOffer(c.Request.Context(), serverCtx, address, tokenId, caller); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// RejectOfferHandler lets the item owner refuse a specific bid.
func RejectOfferHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.RejectOfferReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.RejectOffer(c.Request.Context(), serverCtx, req); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// ApproveOfferHandler accepts a specific bid; the attached value pays the
// trading fee.
func ApproveOfferHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.ApproveOfferReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.ApproveOffer(c.Request.Context(), serverCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// ItemOffersHandler lists the standing bids on a token.
func ItemOffersHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, tokenId, ok := itemParams(c)
		if !ok {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetItemOffers(c.Request.Context(), serverCtx, address, tokenId)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}
