package dao

import (
	"context"
	"time"

	"NFTMarketLedger/src/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (dao *Dao) GetItemTx(ctx context.Context, tx *gorm.DB, collectionAddr string, tokenId uint64) (*model.Item, error) {
	var item model.Item
	err := tx.WithContext(ctx).Table(model.ItemTableName()).
		Where("collection_address = ? AND token_id = ?", collectionAddr, tokenId).
		Find(&item).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get item info")
	}
	return &item, nil
}

func (dao *Dao) AddItemTx(ctx context.Context, tx *gorm.DB, item *model.Item) error {
	now := time.Now().UnixMilli()
	item.CreateTime = now
	item.UpdateTime = now
	err := tx.WithContext(ctx).Table(model.ItemTableName()).Create(item).Error
	if err != nil {
		return errors.Wrap(err, "failed on create item")
	}
	return nil
}

// SetItemOwnerTx rewrites ownership of an item.
func (dao *Dao) SetItemOwnerTx(ctx context.Context, tx *gorm.DB, collectionAddr string, tokenId uint64, owner string) error {
	err := tx.WithContext(ctx).Table(model.ItemTableName()).
		Where("collection_address = ? AND token_id = ?", collectionAddr, tokenId).
		Updates(map[string]interface{}{
			"owner":       owner,
			"update_time": time.Now().UnixMilli(),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed on set item owner")
	}
	return nil
}

func (dao *Dao) QueryItemInfo(ctx context.Context, collectionAddr string, tokenId uint64) (*model.Item, error) {
	return dao.GetItemTx(ctx, dao.DB, collectionAddr, tokenId)
}

func (dao *Dao) QueryCollectionItems(ctx context.Context, collectionAddr string, page, pageSize int) ([]model.Item, error) {
	var items []model.Item
	err := dao.DB.WithContext(ctx).Table(model.ItemTableName()).
		Where("collection_address = ?", collectionAddr).
		Order("token_id asc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Scan(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get collection items")
	}
	return items, nil
}

type OwnedItem struct {
	CollectionAddress string          `json:"collection_address"`
	TokenId           uint64          `json:"token_id"`
	Uri               string          `json:"uri"`
	ListPrice         decimal.Decimal `json:"list_price"`
}

// QueryUserItems lists items owned by an address with their active listing
// price when one exists.
func (dao *Dao) QueryUserItems(ctx context.Context, owner string, page, pageSize int) ([]OwnedItem, error) {
	sql := `SELECT
	ci.collection_address AS collection_address,
	ci.token_id AS token_id,
	ci.uri AS uri,
	co.price AS list_price
FROM
	` + model.ItemTableName() + ` AS ci
	LEFT JOIN ` + model.ListingTableName() + ` co ON ci.collection_address = co.collection_address
	AND ci.token_id = co.token_id
WHERE
	ci.owner = ?
ORDER BY
	ci.collection_address, ci.token_id
	LIMIT ? OFFSET ?`

	var items []OwnedItem
	err := dao.DB.WithContext(ctx).Raw(sql, owner, pageSize, (page-1)*pageSize).Scan(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get user items")
	}
	return items, nil
}
