package service

import (
	"context"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/model"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/utils"

	"gorm.io/gorm"
)

// DepositFunds is the receive path: value sent straight to the marketplace
// is credited to the sender's withdrawable balance with no other state
// change.
func DepositFunds(ctx context.Context, serverCtx *svc.ServerCtx, req entity.DepositReq) (*entity.BalanceRes, error) {
	if !utils.IsValidAddress(req.Address) {
		return nil, errcode.ErrInvalidParams
	}
	amount, ok := utils.ParseAmount(req.Amount)
	if !ok || amount.IsZero() {
		return nil, errcode.ErrInvalidParams
	}
	address := utils.NormalizeAddress(req.Address)

	err := serverCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := serverCtx.Dao.CreditBalanceTx(ctx, tx, address, amount); err != nil {
			return err
		}
		return serverCtx.Dao.AddActivityTx(ctx, tx, &model.Activity{
			EventType: model.EventDepositOfFunds,
			ToAddress: address,
			Amount:    amount,
		})
	})
	if err != nil {
		return nil, err
	}
	return GetBalance(ctx, serverCtx, address)
}

// WithdrawFunds pays accumulated proceeds out. A balance can never go
// negative: the whole attempt aborts when the amount exceeds it.
func WithdrawFunds(ctx context.Context, serverCtx *svc.ServerCtx, req entity.WithdrawFundsReq) (*entity.BalanceRes, error) {
	if !utils.IsValidAddress(req.Address) {
		return nil, errcode.ErrInvalidParams
	}
	amount, ok := utils.ParseAmount(req.Amount)
	if !ok || amount.IsZero() {
		return nil, errcode.ErrInvalidParams
	}
	address := utils.NormalizeAddress(req.Address)

	err := serverCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the debit itself enforces sufficiency, so two concurrent
		// withdrawals can never both drain the same balance
		if err := serverCtx.Dao.DebitBalanceTx(ctx, tx, address, amount); err != nil {
			return err
		}
		return serverCtx.Dao.AddActivityTx(ctx, tx, &model.Activity{
			EventType:   model.EventWithdrawalOfFunds,
			FromAddress: address,
			Amount:      amount,
		})
	})
	if err != nil {
		return nil, err
	}
	return GetBalance(ctx, serverCtx, address)
}

func GetBalance(ctx context.Context, serverCtx *svc.ServerCtx, address string) (*entity.BalanceRes, error) {
	address = utils.NormalizeAddress(address)
	amount, err := serverCtx.Dao.QueryBalance(ctx, address)
	if err != nil {
		return nil, err
	}
	return &entity.BalanceRes{
		Address: address,
		Amount:  amount.String(),
	}, nil
}
