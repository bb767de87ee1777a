package dao

import (
	"context"
	"time"

	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func (dao *Dao) GetPermissionTx(ctx context.Context, tx *gorm.DB, collectionAddr string, tokenId uint64) (*model.Permission, error) {
	var permission model.Permission
	err := tx.WithContext(ctx).Table(model.PermissionTableName()).
		Where("collection_address = ? AND token_id = ?", collectionAddr, tokenId).
		Find(&permission).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get permission state")
	}
	return &permission, nil
}

func (dao *Dao) AddPermissionTx(ctx context.Context, tx *gorm.DB, permission *model.Permission) error {
	permission.UpdateTime = time.Now().UnixMilli()
	err := tx.WithContext(ctx).Table(model.PermissionTableName()).Create(permission).Error
	if err != nil {
		return errors.Wrap(err, "failed on create permission state")
	}
	return nil
}

// SetPermissionTx stores the post-permit state. Every successful grant or
// revoke consumes exactly one nonce, so nonce and delegated always move
// together through this single call site. The update is guarded on the nonce
// the permit verified against: if another submission consumed it first, no
// row matches and the permit is rejected instead of applied twice.
func (dao *Dao) SetPermissionTx(ctx context.Context, tx *gorm.DB, collectionAddr string, tokenId uint64, verifiedNonce uint64, delegated bool) error {
	result := tx.WithContext(ctx).Table(model.PermissionTableName()).
		Where("collection_address = ? AND token_id = ? AND nonce = ?", collectionAddr, tokenId, verifiedNonce).
		Updates(map[string]interface{}{
			"nonce":       verifiedNonce + 1,
			"delegated":   delegated,
			"update_time": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed on set permission state")
	}
	if result.RowsAffected == 0 {
		return errcode.ErrInvalidSignature
	}
	return nil
}

// ClearDelegationTx drops the delegated flag without consuming a nonce, used
// when a transfer consumes the active grant.
func (dao *Dao) ClearDelegationTx(ctx context.Context, tx *gorm.DB, collectionAddr string, tokenId uint64) error {
	err := tx.WithContext(ctx).Table(model.PermissionTableName()).
		Where("collection_address = ? AND token_id = ?", collectionAddr, tokenId).
		Updates(map[string]interface{}{
			"delegated":   false,
			"update_time": time.Now().UnixMilli(),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed on clear delegation")
	}
	return nil
}

func (dao *Dao) QueryPermission(ctx context.Context, collectionAddr string, tokenId uint64) (*model.Permission, error) {
	return dao.GetPermissionTx(ctx, dao.DB, collectionAddr, tokenId)
}
