package service

import (
	"context"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/utils"
)

// GetActivities serves the event feed with optional filters.
func GetActivities(ctx context.Context, serverCtx *svc.ServerCtx, filter entity.ActivityFilterParam) ([]entity.ActivityRes, error) {
	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	collectionAddr := ""
	if filter.CollectionAddress != "" {
		collectionAddr = utils.NormalizeAddress(filter.CollectionAddress)
	}
	activities, err := serverCtx.Dao.QueryActivities(ctx, collectionAddr, filter.EventTypes, page, pageSize)
	if err != nil {
		return nil, err
	}
	res := make([]entity.ActivityRes, 0, len(activities))
	for _, activity := range activities {
		res = append(res, entity.ActivityRes{
			EventType:         activity.EventType,
			CollectionAddress: activity.CollectionAddress,
			TokenId:           activity.TokenId,
			From:              activity.FromAddress,
			To:                activity.ToAddress,
			Amount:            activity.Amount.String(),
			Detail:            activity.Detail,
			CreateTime:        activity.CreateTime,
		})
	}
	return res, nil
}

// GetHistorySales returns the confirmed trades of a collection in a window.
func GetHistorySales(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, since, until int64) ([]entity.HistorySaleRes, error) {
	collectionAddr = utils.NormalizeAddress(collectionAddr)
	sales, err := serverCtx.Dao.QueryHistorySales(ctx, collectionAddr, since, until)
	if err != nil {
		return nil, err
	}
	res := make([]entity.HistorySaleRes, 0, len(sales))
	for _, sale := range sales {
		res = append(res, entity.HistorySaleRes{
			TokenId:    sale.TokenId,
			Price:      sale.Amount.String(),
			From:       sale.FromAddress,
			To:         sale.ToAddress,
			CreateTime: sale.CreateTime,
		})
	}
	return res, nil
}
