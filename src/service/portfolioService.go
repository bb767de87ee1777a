package service

import (
	"context"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/utils"
)

// GetUserItems lists the items an address currently owns, with listing
// prices when one is active.
func GetUserItems(ctx context.Context, serverCtx *svc.ServerCtx, address string, page, pageSize int) ([]entity.PortfolioItemRes, error) {
	if !utils.IsValidAddress(address) {
		return nil, errcode.ErrInvalidParams
	}
	address = utils.NormalizeAddress(address)
	page, pageSize = normalizePage(page, pageSize)

	items, err := serverCtx.Dao.QueryUserItems(ctx, address, page, pageSize)
	if err != nil {
		return nil, err
	}
	res := make([]entity.PortfolioItemRes, 0, len(items))
	for _, item := range items {
		out := entity.PortfolioItemRes{
			CollectionAddress: item.CollectionAddress,
			TokenId:           item.TokenId,
			Uri:               item.Uri,
		}
		if !item.ListPrice.IsZero() {
			out.ListPrice = item.ListPrice.String()
		}
		res = append(res, out)
	}
	return res, nil
}

// GetItemDetail assembles the item card: ownership, uri, active listing and
// open offer count.
func GetItemDetail(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, tokenId uint64) (*entity.ItemDetailRes, error) {
	collectionAddr = utils.NormalizeAddress(collectionAddr)
	item, err := serverCtx.Dao.QueryItemInfo(ctx, collectionAddr, tokenId)
	if err != nil {
		return nil, err
	}
	if item.Id == 0 {
		return nil, errcode.ErrNoSuchItem
	}
	res := &entity.ItemDetailRes{
		CollectionAddress: collectionAddr,
		TokenId:           tokenId,
		Owner:             item.Owner,
		Uri:               item.Uri,
	}
	listing, err := serverCtx.Dao.QueryListing(ctx, collectionAddr, tokenId)
	if err != nil {
		return nil, err
	}
	if listing.Id != 0 {
		res.Listing = &entity.ListingRes{
			CollectionAddress: collectionAddr,
			TokenId:           tokenId,
			Seller:            listing.Seller,
			Price:             listing.Price.String(),
		}
	}
	offerCount, err := serverCtx.Dao.CountItemOffers(ctx, collectionAddr, tokenId)
	if err != nil {
		return nil, err
	}
	res.OfferCount = offerCount
	return res, nil
}

// GetItemOwner reads the current owner of a token.
func GetItemOwner(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, tokenId uint64) (string, error) {
	collectionAddr = utils.NormalizeAddress(collectionAddr)
	item, err := serverCtx.Dao.QueryItemInfo(ctx, collectionAddr, tokenId)
	if err != nil {
		return "", err
	}
	if item.Id == 0 {
		return "", errcode.ErrNoSuchItem
	}
	return item.Owner, nil
}
