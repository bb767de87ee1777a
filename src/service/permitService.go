package service

import (
	"context"
	"time"

	"NFTMarketLedger/src/eip712"
	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/model"
	"NFTMarketLedger/src/pkg/xzap"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetTokenNonce is the public nonce read. Tokens that were never granted or
// revoked report nonce 0.
func GetTokenNonce(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, tokenId uint64) (*entity.TokenNonceRes, error) {
	collectionAddr = utils.NormalizeAddress(collectionAddr)
	permission, err := serverCtx.Dao.QueryPermission(ctx, collectionAddr, tokenId)
	if err != nil {
		return nil, err
	}
	return &entity.TokenNonceRes{
		CollectionAddress: collectionAddr,
		TokenId:           tokenId,
		Nonce:             permission.Nonce,
	}, nil
}

// GrantPermission verifies a signed permit whose spender is the marketplace
// and flips delegation on. RevokePermission is the same verification with the
// zero address as spender; the nonce advances on both so neither message can
// ever be replayed as the other.
func GrantPermission(ctx context.Context, serverCtx *svc.ServerCtx, req entity.PermitReq) (*entity.PermissionRes, error) {
	return applyPermit(ctx, serverCtx, req, serverCtx.MarketAddress, true)
}

func RevokePermission(ctx context.Context, serverCtx *svc.ServerCtx, req entity.PermitReq) (*entity.PermissionRes, error) {
	return applyPermit(ctx, serverCtx, req, eip712.ZeroAddress, false)
}

func applyPermit(ctx context.Context, serverCtx *svc.ServerCtx, req entity.PermitReq, spender common.Address, delegate bool) (*entity.PermissionRes, error) {
	if !utils.IsValidAddress(req.CollectionAddress) {
		return nil, errcode.ErrInvalidParams
	}
	collectionAddr := utils.NormalizeAddress(req.CollectionAddress)

	sig, err := hexutil.Decode(req.Signature)
	if err != nil || len(sig) != eip712.SignatureLength {
		return nil, errcode.ErrInvalidSignature
	}

	var res *entity.PermissionRes
	err = serverCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
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
		if time.Now().Unix() > req.Deadline {
			return errcode.ErrPermitExpired
		}

		permission, err := serverCtx.Dao.GetPermissionTx(ctx, tx, collectionAddr, req.TokenId)
		if err != nil {
			return err
		}

		// The permit domain is bound to the collection, not the marketplace:
		// its name and address seed the separator.
		domain := eip712.Domain{
			Name:              collection.Name,
			Version:           serverCtx.C.Marketplace.PermitVersion,
			VerifyingContract: common.HexToAddress(collection.Address),
		}
		message := eip712.PermitMessage{
			Owner:    common.HexToAddress(item.Owner),
			Spender:  spender,
			TokenId:  req.TokenId,
			Nonce:    permission.Nonce,
			Deadline: req.Deadline,
		}
		signer, err := eip712.RecoverSigner(domain, message, sig)
		if err != nil {
			xzap.WithContext(ctx).Warn("permit recovery failed",
				zap.String("collection", collectionAddr),
				zap.Uint64("tokenId", req.TokenId),
				zap.Error(err))
			return errcode.ErrInvalidSignature
		}
		if !utils.SameAddress(signer.Hex(), item.Owner) {
			return errcode.ErrInvalidSignature
		}

		if err := serverCtx.Dao.SetPermissionTx(ctx, tx, collectionAddr, req.TokenId, permission.Nonce, delegate); err != nil {
			return err
		}

		eventType := model.EventMarketplaceApprovedForToken
		if !delegate {
			eventType = model.EventMarketplacePermissionsRevoked
		}
		if err := serverCtx.Dao.AddActivityTx(ctx, tx, &model.Activity{
			EventType:         eventType,
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			FromAddress:       item.Owner,
		}); err != nil {
			return err
		}

		res = &entity.PermissionRes{
			CollectionAddress: collectionAddr,
			TokenId:           req.TokenId,
			Nonce:             permission.Nonce + 1,
			Delegated:         delegate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
