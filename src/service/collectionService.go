package service

import (
	"context"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/model"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/utils"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateCollection registers a new managed collection. The collection address
// is derived deterministically from the marketplace address and the registry
// size, so replays of the same deployment sequence land on the same address.
func CreateCollection(ctx context.Context, serverCtx *svc.ServerCtx, req entity.CreateCollectionReq) (*entity.CreateCollectionRes, error) {
	if req.Name == "" || req.Symbol == "" || !utils.IsValidAddress(req.Caller) {
		return nil, errcode.ErrInvalidParams
	}
	caller := utils.NormalizeAddress(req.Caller)

	var res *entity.CreateCollectionRes
	err := serverCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := serverCtx.Dao.CountCollectionsTx(ctx, tx)
		if err != nil {
			return err
		}
		address := utils.NormalizeAddress(
			crypto.CreateAddress(serverCtx.MarketAddress, uint64(count)).Hex())

		collection := &model.Collection{
			Address:     address,
			Name:        req.Name,
			Symbol:      req.Symbol,
			Owner:       caller,
			NextTokenId: 0,
		}
		if err := serverCtx.Dao.AddCollectionTx(ctx, tx, collection); err != nil {
			return err
		}
		if err := serverCtx.Dao.AddActivityTx(ctx, tx, &model.Activity{
			EventType:         model.EventCollectionCreated,
			CollectionAddress: address,
			ToAddress:         caller,
			Detail:            req.Name + "/" + req.Symbol,
		}); err != nil {
			return err
		}
		res = &entity.CreateCollectionRes{
			Address: address,
			Name:    req.Name,
			Symbol:  req.Symbol,
			Owner:   caller,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CreateToken mints the next sequential token of a collection, starting at 0.
// Only the collection owner may mint. The permission row is created with the
// token so permits always verify against an existing nonce.
func CreateToken(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, req entity.CreateTokenReq) (*entity.CreateTokenRes, error) {
	if !utils.IsValidAddress(collectionAddr) || !utils.IsValidAddress(req.Caller) {
		return nil, errcode.ErrInvalidParams
	}
	collectionAddr = utils.NormalizeAddress(collectionAddr)
	caller := utils.NormalizeAddress(req.Caller)

	var res *entity.CreateTokenRes
	err := serverCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		collection, err := serverCtx.Dao.GetCollectionTx(ctx, tx, collectionAddr)
		if err != nil {
			return err
		}
		if collection.Id == 0 {
			return errcode.ErrNotRegistered
		}
		if !utils.SameAddress(collection.Owner, caller) {
			return errcode.ErrNotCollectionOwner
		}

		tokenId := collection.NextTokenId
		if err := serverCtx.Dao.AddItemTx(ctx, tx, &model.Item{
			CollectionAddress: collectionAddr,
			TokenId:           tokenId,
			Owner:             caller,
			Uri:               req.Uri,
		}); err != nil {
			return err
		}
		if err := serverCtx.Dao.AddPermissionTx(ctx, tx, &model.Permission{
			CollectionAddress: collectionAddr,
			TokenId:           tokenId,
			Nonce:             0,
			Delegated:         false,
		}); err != nil {
			return err
		}
		if err := serverCtx.Dao.BumpNextTokenIdTx(ctx, tx, collectionAddr, tokenId); err != nil {
			return err
		}
		if err := serverCtx.Dao.AddActivityTx(ctx, tx, &model.Activity{
			EventType:         model.EventItemCreated,
			CollectionAddress: collectionAddr,
			TokenId:           tokenId,
			ToAddress:         caller,
			Detail:            req.Uri,
		}); err != nil {
			return err
		}
		res = &entity.CreateTokenRes{
			TokenId:           tokenId,
			CollectionAddress: collectionAddr,
			Owner:             caller,
			Uri:               req.Uri,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetCollectionDetail serves the collection card, cache-aside over kv.
func GetCollectionDetail(ctx context.Context, serverCtx *svc.ServerCtx, address string) (*entity.CollectionDetailRes, error) {
	address = utils.NormalizeAddress(address)
	if detail := serverCtx.Cached.GetCollectionDetail(address); detail != nil {
		return detail, nil
	}

	collection, err := serverCtx.Dao.QueryCollectionInfo(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed on get collection detail")
	}
	if collection.Id == 0 {
		return nil, errcode.ErrNotRegistered
	}
	itemAmount, err := serverCtx.Dao.QueryCollectionItemAmount(ctx, address)
	if err != nil {
		return nil, err
	}
	floorPrice, err := serverCtx.Dao.QueryFloorPrice(ctx, address)
	if err != nil {
		return nil, err
	}

	detail := &entity.CollectionDetailRes{
		Address:    collection.Address,
		Name:       collection.Name,
		Symbol:     collection.Symbol,
		Owner:      collection.Owner,
		ItemAmount: itemAmount,
		FloorPrice: floorPrice.String(),
	}
	serverCtx.Cached.SetCollectionDetail(address, detail)
	return detail, nil
}

// GetCollectionItems pages through the minted items of a collection.
func GetCollectionItems(ctx context.Context, serverCtx *svc.ServerCtx, address string, page, pageSize int) ([]model.Item, error) {
	address = utils.NormalizeAddress(address)
	page, pageSize = normalizePage(page, pageSize)
	return serverCtx.Dao.QueryCollectionItems(ctx, address, page, pageSize)
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
