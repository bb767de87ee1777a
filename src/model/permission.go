package model

// Permission is the per-token delegation state. Nonce advances by exactly one
// on every successful grant or revoke and is the sole replay guard for
// permits; Delegated is true only while an unconsumed grant is active.
type Permission struct {
	Id                int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CollectionAddress string `gorm:"column:collection_address;type:varchar(42);uniqueIndex:uniq_permission,priority:1" json:"collection_address"`
	TokenId           uint64 `gorm:"column:token_id;uniqueIndex:uniq_permission,priority:2" json:"token_id"`
	Nonce             uint64 `gorm:"column:nonce" json:"nonce"`
	Delegated         bool   `gorm:"column:delegated" json:"delegated"`
	UpdateTime        int64  `gorm:"column:update_time" json:"update_time"`
}

func (Permission) TableName() string {
	return PermissionTableName()
}

func PermissionTableName() string {
	return "ob_permission"
}
