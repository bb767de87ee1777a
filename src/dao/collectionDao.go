package dao

import (
	"context"
	"time"

	"NFTMarketLedger/src/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCollectionTx reads a registry record inside a transaction. A zero Id
// means the address is not a registered collection.
func (dao *Dao) GetCollectionTx(ctx context.Context, tx *gorm.DB, address string) (*model.Collection, error) {
	var collection model.Collection
	err := tx.WithContext(ctx).Table(model.CollectionTableName()).
		Where("address = ?", address).
		Find(&collection).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get collection info")
	}
	return &collection, nil
}

// CountCollectionsTx is the registry size, used as the deterministic
// deployment nonce for new collection addresses.
func (dao *Dao) CountCollectionsTx(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).Table(model.CollectionTableName()).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed on count collections")
	}
	return count, nil
}

func (dao *Dao) AddCollectionTx(ctx context.Context, tx *gorm.DB, collection *model.Collection) error {
	now := time.Now().UnixMilli()
	collection.CreateTime = now
	collection.UpdateTime = now
	err := tx.WithContext(ctx).Table(model.CollectionTableName()).Create(collection).Error
	if err != nil {
		return errors.Wrap(err, "failed on create collection")
	}
	return nil
}

// BumpNextTokenIdTx advances the sequential mint counter past tokenId.
func (dao *Dao) BumpNextTokenIdTx(ctx context.Context, tx *gorm.DB, address string, tokenId uint64) error {
	err := tx.WithContext(ctx).Table(model.CollectionTableName()).
		Where("address = ?", address).
		Updates(map[string]interface{}{
			"next_token_id": tokenId + 1,
			"update_time":   time.Now().UnixMilli(),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed on bump collection token id")
	}
	return nil
}

func (dao *Dao) QueryCollectionInfo(ctx context.Context, address string) (*model.Collection, error) {
	return dao.GetCollectionTx(ctx, dao.DB, address)
}

// QueryCollectionItemAmount counts minted items of a collection.
func (dao *Dao) QueryCollectionItemAmount(ctx context.Context, address string) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).Table(model.ItemTableName()).
		Where("collection_address = ?", address).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed on count collection items")
	}
	return count, nil
}

// QueryFloorPrice returns the lowest active listing price of a collection
// where the seller still owns the listed item. Zero when nothing is listed.
func (dao *Dao) QueryFloorPrice(ctx context.Context, collectionAddr string) (decimal.Decimal, error) {
	sql := `SELECT
	co.price AS price
FROM
	` + model.ItemTableName() + ` AS ci
	JOIN ` + model.ListingTableName() + ` co ON ci.collection_address = co.collection_address
	AND ci.token_id = co.token_id
WHERE
	co.collection_address = ?
	AND ci.owner = co.seller
ORDER BY
	co.price ASC
	LIMIT 1`

	var price decimal.Decimal
	err := dao.DB.WithContext(ctx).Raw(sql, collectionAddr).Scan(&price).Error
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed on get collection floor price")
	}
	return price, nil
}
