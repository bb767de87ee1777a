package controller

import (
	"strconv"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/pkg/xhttp"
	"NFTMarketLedger/src/service"
	"NFTMarketLedger/src/svc"

	"github.com/gin-gonic/gin"
)

// CreateCollectionHandler registers a new managed collection.
func CreateCollectionHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.CreateCollectionReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.CreateCollection(c.Request.Context(), serverCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// CreateTokenHandler mints the next token of a collection.
func CreateTokenHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if address == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		var req entity.CreateTokenReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.CreateToken(c.Request.Context(), serverCtx, address, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// CollectionDetailHandler serves the collection card.
func CollectionDetailHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if address == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetCollectionDetail(c.Request.Context(), serverCtx, address)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// CollectionItemsHandler pages the minted items of a collection.
func CollectionItemsHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if address == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		page, _ := strconv.Atoi(c.Query("page"))
		pageSize, _ := strconv.Atoi(c.Query("page_size"))
		res, err := service.GetCollectionItems(c.Request.Context(), serverCtx, address, page, pageSize)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}

// ItemDetailHandler serves one item with its listing and offer count.
func ItemDetailHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, tokenId, ok := itemParams(c)
		if !ok {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetItemDetail(c.Request.Context(), serverCtx, address, tokenId)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// ItemOwnerHandler reads the current owner of a token.
func ItemOwnerHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, tokenId, ok := itemParams(c)
		if !ok {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		owner, err := service.GetItemOwner(c.Request.Context(), serverCtx, address, tokenId)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Owner string `json:"owner"`
		}{Owner: owner})
	}
}

func itemParams(c *gin.Context) (string, uint64, bool) {
	address := c.Params.ByName("address")
	rawTokenId := c.Params.ByName("token_id")
	if address == "" || rawTokenId == "" {
		return "", 0, false
	}
	tokenId, err := strconv.ParseUint(rawTokenId, 10, 64)
	if err != nil {
		return "", 0, false
	}
	return address, tokenId, true
}
