package model

// Collection is the registry record of a managed collection. NextTokenId is
// the sequential mint counter, starting at 0.
type Collection struct {
	Id          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Address     string `gorm:"column:address;type:varchar(42);uniqueIndex:uniq_collection_address" json:"address"`
	Name        string `gorm:"column:name;type:varchar(128)" json:"name"`
	Symbol      string `gorm:"column:symbol;type:varchar(32)" json:"symbol"`
	Owner       string `gorm:"column:owner;type:varchar(42);index:idx_collection_owner" json:"owner"`
	NextTokenId uint64 `gorm:"column:next_token_id" json:"next_token_id"`
	CreateTime  int64  `gorm:"column:create_time" json:"create_time"`
	UpdateTime  int64  `gorm:"column:update_time" json:"update_time"`
}

func (Collection) TableName() string {
	return CollectionTableName()
}

func CollectionTableName() string {
	return "ob_collection"
}
