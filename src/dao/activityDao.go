package dao

import (
	"context"
	"time"

	"NFTMarketLedger/src/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AddActivityTx appends one emitted event to the journal, inside the same
// transaction as the state change it records.
func (dao *Dao) AddActivityTx(ctx context.Context, tx *gorm.DB, activity *model.Activity) error {
	activity.CreateTime = time.Now().UnixMilli()
	err := tx.WithContext(ctx).Table(model.ActivityTableName()).Create(activity).Error
	if err != nil {
		return errors.Wrap(err, "failed on append activity")
	}
	return nil
}

// QueryActivities reads the event feed, newest first, with optional
// collection and event-type filters.
func (dao *Dao) QueryActivities(ctx context.Context, collectionAddr string, eventTypes []string, page, pageSize int) ([]model.Activity, error) {
	db := dao.DB.WithContext(ctx).Table(model.ActivityTableName())
	if collectionAddr != "" {
		db = db.Where("collection_address = ?", collectionAddr)
	}
	if len(eventTypes) > 0 {
		db = db.Where("event_type in (?)", eventTypes)
	}
	var activities []model.Activity
	err := db.Order("id desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Scan(&activities).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get activities")
	}
	return activities, nil
}

// QueryHistorySales returns completed trades of a collection in a time
// window, given as unix millis; zero bounds are open.
func (dao *Dao) QueryHistorySales(ctx context.Context, collectionAddr string, since, until int64) ([]model.Activity, error) {
	db := dao.DB.WithContext(ctx).Table(model.ActivityTableName()).
		Where("collection_address = ? AND event_type = ?", collectionAddr, model.EventTradeConfirmed)
	if since > 0 {
		db = db.Where("create_time >= ?", since)
	}
	if until > 0 {
		db = db.Where("create_time <= ?", until)
	}
	var sales []model.Activity
	err := db.Order("create_time asc").Scan(&sales).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get history sales")
	}
	return sales, nil
}

type CollectionTrade struct {
	CollectionAddress string          `json:"collection_address"`
	TradeCount        int64           `json:"trade_count"`
	TradeVolume       decimal.Decimal `json:"trade_volume"`
}

// QueryCollectionTrades aggregates confirmed trades per collection, highest
// volume first.
func (dao *Dao) QueryCollectionTrades(ctx context.Context, limit int) ([]CollectionTrade, error) {
	sql := `SELECT
	collection_address AS collection_address,
	count(*) AS trade_count,
	sum(amount) AS trade_volume
FROM
	` + model.ActivityTableName() + `
WHERE
	event_type = ?
GROUP BY collection_address
ORDER BY trade_volume DESC
LIMIT ?`

	var trades []CollectionTrade
	err := dao.DB.WithContext(ctx).Raw(sql, model.EventTradeConfirmed, limit).Scan(&trades).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get collection trades")
	}
	return trades, nil
}
