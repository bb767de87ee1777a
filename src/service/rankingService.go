package service

import (
	"context"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/svc"
)

const defaultRankingSize = 20

// GetTopRanking orders collections by confirmed trade volume.
func GetTopRanking(ctx context.Context, serverCtx *svc.ServerCtx, limit int) ([]entity.CollectionRankingRes, error) {
	if limit < 1 || limit > 100 {
		limit = defaultRankingSize
	}
	trades, err := serverCtx.Dao.QueryCollectionTrades(ctx, limit)
	if err != nil {
		return nil, err
	}
	res := make([]entity.CollectionRankingRes, 0, len(trades))
	for _, trade := range trades {
		collection, err := serverCtx.Dao.QueryCollectionInfo(ctx, trade.CollectionAddress)
		if err != nil {
			return nil, err
		}
		res = append(res, entity.CollectionRankingRes{
			Address:     trade.CollectionAddress,
			Name:        collection.Name,
			TradeCount:  trade.TradeCount,
			TradeVolume: trade.TradeVolume.String(),
		})
	}
	return res, nil
}
