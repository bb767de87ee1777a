package dao

import (
	"context"
	"time"

	"NFTMarketLedger/src/pkg/xkv"

	"gorm.io/gorm"
)

const QueryTimeout = time.Second * 30

type Dao struct {
	ctx     context.Context
	DB      *gorm.DB
	KvStore *xkv.Store
}

func New(ctx context.Context, db *gorm.DB, kvStore *xkv.Store) *Dao {
	return &Dao{
		ctx:     ctx,
		DB:      db,
		KvStore: kvStore,
	}
}
