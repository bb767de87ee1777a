package model

import "github.com/shopspring/decimal"

// Balance is an account's withdrawable proceeds. Never negative.
type Balance struct {
	Id         int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Address    string          `gorm:"column:address;type:varchar(42);uniqueIndex:uniq_balance_address" json:"address"`
	Amount     decimal.Decimal `gorm:"column:amount;type:decimal(38,0)" json:"amount"`
	UpdateTime int64           `gorm:"column:update_time" json:"update_time"`
}

func (Balance) TableName() string {
	return BalanceTableName()
}

func BalanceTableName() string {
	return "ob_balance"
}
