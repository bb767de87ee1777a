package model

import "github.com/shopspring/decimal"

// Event names recorded in the activity journal, one per marketplace event.
const (
	EventCollectionCreated             = "CollectionCreated"
	EventItemCreated                   = "ItemCreated"
	EventMarketplaceApprovedForToken   = "MarketplaceApprovedForToken"
	EventMarketplacePermissionsRevoked = "MarketplacePermissionsRevoked"
	EventItemListedForSale             = "ItemListedForSale"
	EventItemWithdrawnFromSale         = "ItemWithdrawnFromSale"
	EventOfferMade                     = "OfferMade"
	EventOfferWithdrawn                = "OfferWithdrawn"
	EventOfferRejected                 = "OfferRejected"
	EventTradeConfirmed                = "TradeConfirmed"
	EventWithdrawalOfFunds             = "WithdrawalOfFunds"
	EventDepositOfFunds                = "DepositOfFunds"
)

// Activity is the append-only journal of emitted marketplace events. Detail
// carries event-specific payload such as the token uri or "name/symbol".
type Activity struct {
	Id                int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventType         string          `gorm:"column:event_type;type:varchar(64);index:idx_activity_event" json:"event_type"`
	CollectionAddress string          `gorm:"column:collection_address;type:varchar(42);index:idx_activity_collection" json:"collection_address"`
	TokenId           uint64          `gorm:"column:token_id" json:"token_id"`
	FromAddress       string          `gorm:"column:from_address;type:varchar(42)" json:"from_address"`
	ToAddress         string          `gorm:"column:to_address;type:varchar(42)" json:"to_address"`
	Amount            decimal.Decimal `gorm:"column:amount;type:decimal(38,0)" json:"amount"`
	Detail            string          `gorm:"column:detail;type:varchar(512)" json:"detail"`
	CreateTime        int64           `gorm:"column:create_time;index:idx_activity_time" json:"create_time"`
}

func (Activity) TableName() string {
	return ActivityTableName()
}

func ActivityTableName() string {
	return "ob_activity"
}
