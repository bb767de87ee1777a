package dao

import (
	"context"
	"time"

	"NFTMarketLedger/src/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func (dao *Dao) GetListingTx(ctx context.Context, tx *gorm.DB, collectionAddr string, tokenId uint64) (*model.Listing, error) {
	var listing model.Listing
	err := tx.WithContext(ctx).Table(model.ListingTableName()).
		Where("collection_address = ? AND token_id = ?", collectionAddr, tokenId).
		Find(&listing).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get listing")
	}
	return &listing, nil
}

func (dao *Dao) AddListingTx(ctx context.Context, tx *gorm.DB, listing *model.Listing) error {
	listing.CreateTime = time.Now().UnixMilli()
	err := tx.WithContext(ctx).Table(model.ListingTableName()).Create(listing).Error
	if err != nil {
		return errors.Wrap(err, "failed on create listing")
	}
	return nil
}

func (dao *Dao) DeleteListingTx(ctx context.Context, tx *gorm.DB, collectionAddr string, tokenId uint64) error {
	err := tx.WithContext(ctx).
		Where("collection_address = ? AND token_id = ?", collectionAddr, tokenId).
		Delete(&model.Listing{}).Error
	if err != nil {
		return errors.Wrap(err, "failed on delete listing")
	}
	return nil
}

func (dao *Dao) GetOfferTx(ctx context.Context, tx *gorm.DB, collectionAddr string, tokenId uint64, bidder string) (*model.Offer, error) {
	var offer model.Offer
	err := tx.WithContext(ctx).Table(model.OfferTableName()).
		Where("collection_address = ? AND token_id = ? AND bidder = ?", collectionAddr, tokenId, bidder).
		Find(&offer).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get offer")
	}
	return &offer, nil
}

func (dao *Dao) AddOfferTx(ctx context.Context, tx *gorm.DB, offer *model.Offer) error {
	offer.CreateTime = time.Now().UnixMilli()
	err := tx.WithContext(ctx).Table(model.OfferTableName()).Create(offer).Error
	if err != nil {
		return errors.Wrap(err, "failed on create offer")
	}
	return nil
}

func (dao *Dao) DeleteOfferTx(ctx context.Context, tx *gorm.DB, collectionAddr string, tokenId uint64, bidder string) error {
	err := tx.WithContext(ctx).
		Where("collection_address = ? AND token_id = ? AND bidder = ?", collectionAddr, tokenId, bidder).
		Delete(&model.Offer{}).Error
	if err != nil {
		return errors.Wrap(err, "failed on delete offer")
	}
	return nil
}

func (dao *Dao) QueryListing(ctx context.Context, collectionAddr string, tokenId uint64) (*model.Listing, error) {
	return dao.GetListingTx(ctx, dao.DB, collectionAddr, tokenId)
}

// QueryItemOffers lists the standing bids on one token, best first.
func (dao *Dao) QueryItemOffers(ctx context.Context, collectionAddr string, tokenId uint64) ([]model.Offer, error) {
	var offers []model.Offer
	err := dao.DB.WithContext(ctx).Table(model.OfferTableName()).
		Where("collection_address = ? AND token_id = ?", collectionAddr, tokenId).
		Order("amount desc").
		Scan(&offers).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get item offers")
	}
	return offers, nil
}

func (dao *Dao) CountItemOffers(ctx context.Context, collectionAddr string, tokenId uint64) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).Table(model.OfferTableName()).
		Where("collection_address = ? AND token_id = ?", collectionAddr, tokenId).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed on count item offers")
	}
	return count, nil
}
