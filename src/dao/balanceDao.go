package dao

import (
	"context"
	"time"

	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (dao *Dao) GetBalanceTx(ctx context.Context, tx *gorm.DB, address string) (*model.Balance, error) {
	var balance model.Balance
	err := tx.WithContext(ctx).Table(model.BalanceTableName()).
		Where("address = ?", address).
		Find(&balance).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get balance")
	}
	return &balance, nil
}

// CreditBalanceTx adds amount to an account, creating the row on first use.
// The increment happens in SQL so concurrent credits never lose an update.
func (dao *Dao) CreditBalanceTx(ctx context.Context, tx *gorm.DB, address string, amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}
	now := time.Now().UnixMilli()
	result := tx.WithContext(ctx).Table(model.BalanceTableName()).
		Where("address = ?", address).
		Updates(map[string]interface{}{
			"amount":      gorm.Expr("amount + ?", amount),
			"update_time": now,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed on credit balance")
	}
	if result.RowsAffected == 0 {
		err := tx.WithContext(ctx).Table(model.BalanceTableName()).Create(&model.Balance{
			Address:    address,
			Amount:     amount,
			UpdateTime: now,
		}).Error
		if err != nil {
			return errors.Wrap(err, "failed on credit balance")
		}
	}
	return nil
}

// DebitBalanceTx subtracts amount. The decrement is guarded in SQL: the row
// must still hold at least amount when the update lands, so two concurrent
// debits can never both drain the same funds.
func (dao *Dao) DebitBalanceTx(ctx context.Context, tx *gorm.DB, address string, amount decimal.Decimal) error {
	result := tx.WithContext(ctx).Table(model.BalanceTableName()).
		Where("address = ? AND amount >= ?", address, amount).
		Updates(map[string]interface{}{
			"amount":      gorm.Expr("amount - ?", amount),
			"update_time": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed on debit balance")
	}
	if result.RowsAffected == 0 {
		return errcode.ErrInsufficientFunds
	}
	return nil
}

func (dao *Dao) QueryBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	balance, err := dao.GetBalanceTx(ctx, dao.DB, address)
	if err != nil {
		return decimal.Zero, err
	}
	if balance.Id == 0 {
		return decimal.Zero, nil
	}
	return balance.Amount, nil
}
