package model

// Item tracks current ownership of a token inside a managed collection.
type Item struct {
	Id                int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CollectionAddress string `gorm:"column:collection_address;type:varchar(42);uniqueIndex:uniq_item,priority:1" json:"collection_address"`
	TokenId           uint64 `gorm:"column:token_id;uniqueIndex:uniq_item,priority:2" json:"token_id"`
	Owner             string `gorm:"column:owner;type:varchar(42);index:idx_item_owner" json:"owner"`
	Uri               string `gorm:"column:uri;type:varchar(512)" json:"uri"`
	CreateTime        int64  `gorm:"column:create_time" json:"create_time"`
	UpdateTime        int64  `gorm:"column:update_time" json:"update_time"`
}

func (Item) TableName() string {
	return ItemTableName()
}

func ItemTableName() string {
	return "ob_item"
}
