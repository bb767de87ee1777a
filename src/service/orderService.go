package service

import (
	"context"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/model"
	"NFTMarketLedger/src/service/mq"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Every operation here runs as one transaction: all preconditions first, then
// all mutations, and nothing external in between. A failed precondition rolls
// the whole attempt back.

// ListForSale puts an item up at a fixed price. The attached value must cover
// the trading fee, which accrues to the marketplace; anything above the fee
// is credited back to the seller's balance.
func ListForSale(ctx context.Context, serverCtx *svc.ServerCtx, req entity.ListForSaleReq) (*entity.ListingRes, error) {
	if !utils.IsValidAddress(req.CollectionAddress) || !utils.IsValidAddress(req.Caller) {
		return nil, errcode.ErrInvalidParams
	}
	price, ok := utils.ParseAmount(req.Price)
	if !ok || price.IsZero() {
		return nil, errcode.ErrInvalidParams
	}
	value, ok := utils.ParseAmount(req.Value)
	if !ok {
		return nil, errcode.ErrInvalidParams
	}
	if value.LessThan(serverCtx.TradingFee) {
		return nil, errcode.ErrInsufficientFee
	}
	collectionAddr := utils.NormalizeAddress(req.CollectionAddress)
	caller := utils.NormalizeAddress(req.Caller)

	var res *entity.ListingRes
	err := serverCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		collection, err := serverCtx.Dao.GetCollectionTx(ctx, tx, collectionAddr)
		if err != nil {
			return err
		}
		if collection.Id == 0 {
			return errcode.ErrNotRegistered
		}
		item, err := serverCtx.Dao.GetItemTx(ctx, tx, collectionAddr, req.TokenId)
		if err != nil {
			return err
		}
		if item.Id == 0 {
			return errcode.ErrNoSuchItem
		}
		if !utils.SameAddress(item.Owner, caller) {
			return errcode.ErrNotItemOwner
		}
		permission, err := serverCtx.Dao.GetPermissionTx(ctx, tx, collectionAddr, req.TokenId)
		if err != nil {
			return err
		}
		if !permission.Delegated {
			return errcode.ErrNotDelegated
		}
		existing, err := serverCtx.Dao.GetListingTx(ctx, tx, collectionAddr, req.TokenId)
		if err != nil {
			return err
		}
		if existing.Id != 0 {
			return errcode.ErrDuplicateListing
		}

		if err := serverCtx.Dao.AddListingTx(ctx, tx, &model.Listing{
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			Seller:            caller,
			Price:             price,
		}); err != nil {
			return err
		}
		if err := settleDeposit(ctx, serverCtx, tx, caller, value, serverCtx.TradingFee); err != nil {
			return err
		}
		if err := serverCtx.Dao.AddActivityTx(ctx, tx, &model.Activity{
			EventType:         model.EventItemListedForSale,
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			FromAddress:       caller,
			Amount:            price,
		}); err != nil {
			return err
		}
		res = &entity.ListingRes{
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			Seller:            caller,
			Price:             price.String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// WithdrawFromSale removes the caller's own listing.
func WithdrawFromSale(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, tokenId uint64, caller string) error {
	if !utils.IsValidAddress(collectionAddr) || !utils.IsValidAddress(caller) {
		return errcode.ErrInvalidParams
	}
	collectionAddr = utils.NormalizeAddress(collectionAddr)
	caller = utils.NormalizeAddress(caller)

	return serverCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listing, err := serverCtx.Dao.GetListingTx(ctx, tx, collectionAddr, tokenId)
		if err != nil {
			return err
		}
		if listing.Id == 0 {
			return errcode.ErrNoSuchListing
		}
		if !utils.SameAddress(listing.Seller, caller) {
			return errcode.ErrNotItemOwner
		}
		if err := serverCtx.Dao.DeleteListingTx(ctx, tx, collectionAddr, tokenId); err != nil {
			return err
		}
		return serverCtx.Dao.AddActivityTx(ctx, tx, &model.Activity{
			EventType:         model.EventItemWithdrawnFromSale,
			CollectionAddress: collectionAddr,
			TokenId:           tokenId,
			FromAddress:       caller,
		})
	})
}

// MakeOffer escrows the attached value as a standing bid. Owners cannot bid
// on their own items, and a bidder holds at most one open offer per item.
func MakeOffer(ctx context.Context, serverCtx *svc.ServerCtx, req entity.MakeOfferReq) (*entity.OfferRes, error) {
	if !utils.IsValidAddress(req.CollectionAddress) || !utils.IsValidAddress(req.Caller) {
		return nil, errcode.ErrInvalidParams
	}
	value, ok := utils.ParseAmount(req.Value)
	if !ok || value.IsZero() {
		return nil, errcode.ErrInvalidParams
	}
	collectionAddr := utils.NormalizeAddress(req.CollectionAddress)
	caller := utils.NormalizeAddress(req.Caller)

	var res *entity.OfferRes
	err := serverCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		collection, err := serverCtx.Dao.GetCollectionTx(ctx, tx, collectionAddr)
		if err != nil {
			return err
		}
		if collection.Id == 0 {
			return errcode.ErrNotRegistered
		}
		item, err := serverCtx.Dao.GetItemTx(ctx, tx, collectionAddr, req.TokenId)
		if err != nil {
			return err
		}
		if item.Id == 0 {
			return errcode.ErrNoSuchItem
		}
		if utils.SameAddress(item.Owner, caller) {
			return errcode.ErrCallerIsOwner
		}
		existing, err := serverCtx.Dao.GetOfferTx(ctx, tx, collectionAddr, req.TokenId, caller)
		if err != nil {
			return err
		}
		if existing.Id != 0 {
			return errcode.ErrDuplicateOffer
		}

		if err := serverCtx.Dao.AddOfferTx(ctx, tx, &model.Offer{
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			Bidder:            caller,
			Amount:            value,
		}); err != nil {
			return err
		}
		if err := serverCtx.Dao.AddActivityTx(ctx, tx, &model.Activity{
			EventType:         model.EventOfferMade,
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			FromAddress:       caller,
			Amount:            value,
		}); err != nil {
			return err
		}
		res = &entity.OfferRes{
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			Bidder:            caller,
			Amount:            value.String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// WithdrawOffer refunds the caller's escrowed bid to their balance and
// removes the offer.
func WithdrawOffer(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, tokenId uint64, caller string) error {
	if !utils.IsValidAddress(collectionAddr) || !utils.IsValidAddress(caller) {
		return errcode.ErrInvalidParams
	}
	collectionAddr = utils.NormalizeAddress(collectionAddr)
	caller = utils.NormalizeAddress(caller)

	return serverCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, err := serverCtx.Dao.GetOfferTx(ctx, tx, collectionAddr, tokenId, caller)
		if err != nil {
			return err
		}
		if offer.Id == 0 {
			return errcode.ErrNoSuchOffer
		}
		if err := serverCtx.Dao.CreditBalanceTx(ctx, tx, caller, offer.Amount); err != nil {
			return err
		}
		if err := serverCtx.Dao.DeleteOfferTx(ctx, tx, collectionAddr, tokenId, caller); err != nil {
			return err
		}
		return serverCtx.Dao.AddActivityTx(ctx, tx, &model.Activity{
			EventType:         model.EventOfferWithdrawn,
			CollectionAddress: collectionAddr,
			TokenId:           tokenId,
			FromAddress:       caller,
			Amount:            offer.Amount,
		})
	})
}

// RejectOffer lets the item owner refund and delete a specific bidder's offer.
func RejectOffer(ctx context.Context, serverCtx *svc.ServerCtx, req entity.RejectOfferReq) error {
	if !utils.IsValidAddress(req.CollectionAddress) || !utils.IsValidAddress(req.Caller) || !utils.IsValidAddress(req.Bidder) {
		return errcode.ErrInvalidParams
	}
	collectionAddr := utils.NormalizeAddress(req.CollectionAddress)
	caller := utils.NormalizeAddress(req.Caller)
	bidder := utils.NormalizeAddress(req.Bidder)

	return serverCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := serverCtx.Dao.GetItemTx(ctx, tx, collectionAddr, req.TokenId)
		if err != nil {
			return err
		}
		if item.Id == 0 {
			return errcode.ErrNoSuchItem
		}
		if !utils.SameAddress(item.Owner, caller) {
			return errcode.ErrNotItemOwner
		}
		offer, err := serverCtx.Dao.GetOfferTx(ctx, tx, collectionAddr, req.TokenId, bidder)
		if err != nil {
			return err
		}
		if offer.Id == 0 {
			return errcode.ErrNoSuchOffer
		}
		if err := serverCtx.Dao.CreditBalanceTx(ctx, tx, bidder, offer.Amount); err != nil {
			return err
		}
		if err := serverCtx.Dao.DeleteOfferTx(ctx, tx, collectionAddr, req.TokenId, bidder); err != nil {
			return err
		}
		return serverCtx.Dao.AddActivityTx(ctx, tx, &model.Activity{
			EventType:         model.EventOfferRejected,
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			FromAddress:       caller,
			ToAddress:         bidder,
			Amount:            offer.Amount,
		})
	})
}

// BuyItem settles an active listing. The attached value must cover the
// price; the price goes to the seller's balance and any excess back to the
// buyer's. The transfer consumes the seller's delegation, so a listing whose
// permission was revoked fails here rather than silently succeeding.
func BuyItem(ctx context.Context, serverCtx *svc.ServerCtx, req entity.BuyItemReq) (*entity.TradeRes, error) {
	if !utils.IsValidAddress(req.CollectionAddress) || !utils.IsValidAddress(req.Caller) {
		return nil, errcode.ErrInvalidParams
	}
	value, ok := utils.ParseAmount(req.Value)
	if !ok {
		return nil, errcode.ErrInvalidParams
	}
	collectionAddr := utils.NormalizeAddress(req.CollectionAddress)
	buyer := utils.NormalizeAddress(req.Caller)

	var res *entity.TradeRes
	err := serverCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listing, err := serverCtx.Dao.GetListingTx(ctx, tx, collectionAddr, req.TokenId)
		if err != nil {
			return err
		}
		if listing.Id == 0 {
			return errcode.ErrNoSuchListing
		}
		if value.LessThan(listing.Price) {
			return errcode.ErrInsufficientPayment
		}

		if err := transferItemTx(ctx, serverCtx, tx, collectionAddr, req.TokenId, listing.Seller, buyer); err != nil {
			return err
		}
		if err := serverCtx.Dao.CreditBalanceTx(ctx, tx, listing.Seller, listing.Price); err != nil {
			return err
		}
		if err := serverCtx.Dao.CreditBalanceTx(ctx, tx, buyer, value.Sub(listing.Price)); err != nil {
			return err
		}
		if err := serverCtx.Dao.AddActivityTx(ctx, tx, &model.Activity{
			EventType:         model.EventTradeConfirmed,
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			FromAddress:       listing.Seller,
			ToAddress:         buyer,
			Amount:            listing.Price,
		}); err != nil {
			return err
		}
		res = &entity.TradeRes{
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			From:              listing.Seller,
			To:                buyer,
			Price:             listing.Price.String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	mq.PushTradeConfirmed(serverCtx.KvStore, projectName(serverCtx), res.CollectionAddress, res.TokenId, res.Price)
	return res, nil
}

// ApproveOffer lets the item owner accept a specific standing bid. The owner
// pays the trading fee with the call; the escrowed bid becomes the owner's
// proceeds.
func ApproveOffer(ctx context.Context, serverCtx *svc.ServerCtx, req entity.ApproveOfferReq) (*entity.TradeRes, error) {
	if !utils.IsValidAddress(req.CollectionAddress) || !utils.IsValidAddress(req.Caller) || !utils.IsValidAddress(req.Bidder) {
		return nil, errcode.ErrInvalidParams
	}
	value, ok := utils.ParseAmount(req.Value)
	if !ok {
		return nil, errcode.ErrInvalidParams
	}
	if value.LessThan(serverCtx.TradingFee) {
		return nil, errcode.ErrInsufficientFee
	}
	collectionAddr := utils.NormalizeAddress(req.CollectionAddress)
	caller := utils.NormalizeAddress(req.Caller)
	bidder := utils.NormalizeAddress(req.Bidder)

	var res *entity.TradeRes
	err := serverCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := serverCtx.Dao.GetItemTx(ctx, tx, collectionAddr, req.TokenId)
		if err != nil {
			return err
		}
		if item.Id == 0 {
			return errcode.ErrNoSuchItem
		}
		if !utils.SameAddress(item.Owner, caller) {
			return errcode.ErrNotItemOwner
		}
		offer, err := serverCtx.Dao.GetOfferTx(ctx, tx, collectionAddr, req.TokenId, bidder)
		if err != nil {
			return err
		}
		if offer.Id == 0 {
			return errcode.ErrNoSuchOffer
		}

		if err := transferItemTx(ctx, serverCtx, tx, collectionAddr, req.TokenId, caller, bidder); err != nil {
			return err
		}
		if err := serverCtx.Dao.CreditBalanceTx(ctx, tx, caller, offer.Amount); err != nil {
			return err
		}
		if err := settleDeposit(ctx, serverCtx, tx, caller, value, serverCtx.TradingFee); err != nil {
			return err
		}
		if err := serverCtx.Dao.DeleteOfferTx(ctx, tx, collectionAddr, req.TokenId, bidder); err != nil {
			return err
		}
		if err := serverCtx.Dao.AddActivityTx(ctx, tx, &model.Activity{
			EventType:         model.EventTradeConfirmed,
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			FromAddress:       caller,
			ToAddress:         bidder,
			Amount:            offer.Amount,
		}); err != nil {
			return err
		}
		res = &entity.TradeRes{
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			From:              caller,
			To:                bidder,
			Price:             offer.Amount.String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	mq.PushTradeConfirmed(serverCtx.KvStore, projectName(serverCtx), res.CollectionAddress, res.TokenId, res.Price)
	return res, nil
}

// GetListing reads the active listing of a token.
func GetListing(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, tokenId uint64) (*entity.ListingRes, error) {
	collectionAddr = utils.NormalizeAddress(collectionAddr)
	listing, err := serverCtx.Dao.QueryListing(ctx, collectionAddr, tokenId)
	if err != nil {
		return nil, err
	}
	if listing.Id == 0 {
		return nil, errcode.ErrNoSuchListing
	}
	return &entity.ListingRes{
		CollectionAddress: listing.CollectionAddress,
		TokenId:           listing.TokenId,
		Seller:            listing.Seller,
		Price:             listing.Price.String(),
	}, nil
}

// GetItemOffers lists the standing bids on a token.
func GetItemOffers(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, tokenId uint64) ([]entity.OfferRes, error) {
	collectionAddr = utils.NormalizeAddress(collectionAddr)
	offers, err := serverCtx.Dao.QueryItemOffers(ctx, collectionAddr, tokenId)
	if err != nil {
		return nil, err
	}
	res := make([]entity.OfferRes, 0, len(offers))
	for _, offer := range offers {
		res = append(res, entity.OfferRes{
			CollectionAddress: offer.CollectionAddress,
			TokenId:           offer.TokenId,
			Bidder:            offer.Bidder,
			Amount:            offer.Amount.String(),
		})
	}
	return res, nil
}

// transferItemTx moves an item between accounts. It requires an active
// delegation, consumes it, and drops any listing of the item, so no stale
// sale order can survive an ownership change. All of this happens before the
// surrounding operation commits, never after.
func transferItemTx(ctx context.Context, serverCtx *svc.ServerCtx, tx *gorm.DB, collectionAddr string, tokenId uint64, from, to string) error {
	item, err := serverCtx.Dao.GetItemTx(ctx, tx, collectionAddr, tokenId)
	if err != nil {
		return err
	}
	if item.Id == 0 {
		return errcode.ErrNoSuchItem
	}
	if !utils.SameAddress(item.Owner, from) {
		return errcode.ErrNotItemOwner
	}
	permission, err := serverCtx.Dao.GetPermissionTx(ctx, tx, collectionAddr, tokenId)
	if err != nil {
		return err
	}
	if !permission.Delegated {
		return errcode.ErrNotDelegated
	}
	if err := serverCtx.Dao.SetItemOwnerTx(ctx, tx, collectionAddr, tokenId, to); err != nil {
		return err
	}
	if err := serverCtx.Dao.ClearDelegationTx(ctx, tx, collectionAddr, tokenId); err != nil {
		return err
	}
	return serverCtx.Dao.DeleteListingTx(ctx, tx, collectionAddr, tokenId)
}

// settleDeposit accrues the fee to the marketplace's own balance row and
// credits the remainder of the attached value back to the payer.
func settleDeposit(ctx context.Context, serverCtx *svc.ServerCtx, tx *gorm.DB, payer string, value, fee decimal.Decimal) error {
	marketAddr := utils.NormalizeAddress(serverCtx.MarketAddress.Hex())
	if err := serverCtx.Dao.CreditBalanceTx(ctx, tx, marketAddr, fee); err != nil {
		return err
	}
	return serverCtx.Dao.CreditBalanceTx(ctx, tx, payer, value.Sub(fee))
}

func projectName(serverCtx *svc.ServerCtx) string {
	if serverCtx.C != nil && serverCtx.C.ProjectCfg != nil {
		return serverCtx.C.ProjectCfg.Name
	}
	return "nml"
}
