package dao

import (
	"context"
	"time"

	"NFTMarketLedger/src/model"

	"github.com/pkg/errors"
)

func (dao *Dao) AddUser(ctx context.Context, address string) error {
	now := time.Now().UnixMilli()
	user := &model.User{
		Address:    address,
		IsAllowed:  false,
		IsSigned:   true,
		CreateTime: now,
		UpdateTime: now,
	}
	err := dao.DB.WithContext(ctx).Table(model.UserTableName()).Create(user).Error
	if err != nil {
		return errors.Wrap(err, "failed on create new user")
	}
	return nil
}

func (dao *Dao) GetUser(ctx context.Context, address string) (*model.User, error) {
	var user model.User
	err := dao.DB.WithContext(ctx).Table(model.UserTableName()).
		Where("address = ?", address).
		Find(&user).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on get user info")
	}
	return &user, nil
}

func (dao *Dao) GetUserSignStatus(ctx context.Context, address string) (bool, error) {
	user, err := dao.GetUser(ctx, address)
	if err != nil {
		return false, err
	}
	return user.IsSigned, nil
}
