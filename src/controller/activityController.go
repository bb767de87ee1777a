package controller

import (
	"strconv"
	"strings"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/pkg/xhttp"
	"NFTMarketLedger/src/service"
	"NFTMarketLedger/src/svc"

	"github.com/gin-gonic/gin"
)

// ActivityListHandler pages the marketplace event journal.
func ActivityListHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := entity.ActivityFilterParam{
			CollectionAddress: c.Query("collection_address"),
		}
		if raw := c.Query("event_types"); raw != "" {
			filter.EventTypes = strings.Split(raw, ",")
		}
		filter.Page, _ = strconv.Atoi(c.Query("page"))
		filter.PageSize, _ = strconv.Atoi(c.Query("page_size"))

		res, err := service.GetActivities(c.Request.Context(), serverCtx, filter)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}

// HistorySalesHandler lists the confirmed trades of a collection in a window.
func HistorySalesHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if address == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		since, _ := strconv.ParseInt(c.Query("since"), 10, 64)
		until, _ := strconv.ParseInt(c.Query("until"), 10, 64)

		res, err := service.GetHistorySales(c.Request.Context(), serverCtx, address, since, until)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}

// TopRankingHandler orders collections by traded volume.
func TopRankingHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit <= 0 {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetTopRanking(c.Request.Context(), serverCtx, limit)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}

// UserItemsHandler pages the items an address currently owns.
func UserItemsHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if address == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		page, _ := strconv.Atoi(c.Query("page"))
		pageSize, _ := strconv.Atoi(c.Query("page_size"))

		res, err := service.GetUserItems(c.Request.Context(), serverCtx, address, page, pageSize)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}
