package model

import "github.com/shopspring/decimal"

// Listing is the single active sale order of a token.
type Listing struct {
	Id                int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CollectionAddress string          `gorm:"column:collection_address;type:varchar(42);uniqueIndex:uniq_listing,priority:1" json:"collection_address"`
	TokenId           uint64          `gorm:"column:token_id;uniqueIndex:uniq_listing,priority:2" json:"token_id"`
	Seller            string          `gorm:"column:seller;type:varchar(42);index:idx_listing_seller" json:"seller"`
	Price             decimal.Decimal `gorm:"column:price;type:decimal(38,0)" json:"price"`
	CreateTime        int64           `gorm:"column:create_time" json:"create_time"`
}

func (Listing) TableName() string {
	return ListingTableName()
}

func ListingTableName() string {
	return "ob_listing"
}

// Offer is a bidder's standing bid with its escrowed amount. At most one open
// offer per (token, bidder).
type Offer struct {
	Id                int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CollectionAddress string          `gorm:"column:collection_address;type:varchar(42);uniqueIndex:uniq_offer,priority:1" json:"collection_address"`
	TokenId           uint64          `gorm:"column:token_id;uniqueIndex:uniq_offer,priority:2" json:"token_id"`
	Bidder            string          `gorm:"column:bidder;type:varchar(42);uniqueIndex:uniq_offer,priority:3" json:"bidder"`
	Amount            decimal.Decimal `gorm:"column:amount;type:decimal(38,0)" json:"amount"`
	CreateTime        int64           `gorm:"column:create_time" json:"create_time"`
}

func (Offer) TableName() string {
	return OfferTableName()
}

func OfferTableName() string {
	return "ob_offer"
}
