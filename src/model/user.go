package model

type User struct {
	Id         int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Address    string `gorm:"column:address;type:varchar(42);uniqueIndex:uniq_user_address" json:"address"`
	IsAllowed  bool   `gorm:"column:is_allowed" json:"is_allowed"`
	IsSigned   bool   `gorm:"column:is_signed" json:"is_signed"`
	CreateTime int64  `gorm:"column:create_time" json:"create_time"`
	UpdateTime int64  `gorm:"column:update_time" json:"update_time"`
}

func (User) TableName() string {
	return UserTableName()
}

func UserTableName() string {
	return "ob_user"
}
