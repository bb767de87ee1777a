package svc

import (
	"context"
	"time"

	cached "NFTMarketLedger/src/cache"
	"NFTMarketLedger/src/config"
	"NFTMarketLedger/src/dao"
	"NFTMarketLedger/src/model"
	"NFTMarketLedger/src/pkg/xkv"
	"NFTMarketLedger/src/pkg/xzap"
	"NFTMarketLedger/src/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/zeromicro/go-zero/core/stores/cache"
	zerokv "github.com/zeromicro/go-zero/core/stores/kv"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type ServerCtx struct {
	C       *config.Config
	DB      *gorm.DB
	Dao     *dao.Dao
	KvStore *xkv.Store
	Cached  *cached.Cached

	// Marketplace identity, fixed at deployment.
	MarketAddress common.Address
	TradingFee    decimal.Decimal
}

func NewServiceContext(c *config.Config) (*ServerCtx, error) {
	_, err := xzap.SetUp(c.Log)
	if err != nil {
		return nil, err
	}

	if c.Marketplace == nil || !utils.IsValidAddress(c.Marketplace.Address) {
		return nil, errors.New("invalid marketplace address config")
	}
	tradingFee, ok := utils.ParseAmount(c.Marketplace.TradingFee)
	if !ok {
		return nil, errors.New("invalid marketplace trading_fee config")
	}

	var store *xkv.Store
	if c.Kv != nil && len(c.Kv.Redis) > 0 {
		var kvConf zerokv.KvConf
		for _, con := range c.Kv.Redis {
			kvConf = append(kvConf, cache.NodeConf{
				RedisConf: redis.RedisConf{
					Host: con.Host,
					Type: con.Type,
					Pass: con.Pass,
				},
				Weight: 1,
			})
		}
		store = xkv.NewStore(kvConf)
	}

	db, err := gorm.Open(mysql.Open(c.DB.Dsn))
	if err != nil {
		return nil, errors.Wrap(err, "failed on open database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed on get database pool")
	}
	if c.DB.MaxIdleCons > 0 {
		sqlDB.SetMaxIdleConns(c.DB.MaxIdleCons)
	}
	if c.DB.MaxOpenCons > 0 {
		sqlDB.SetMaxOpenConns(c.DB.MaxOpenCons)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := MigrateLedger(db); err != nil {
		return nil, err
	}

	d := dao.New(context.Background(), db, store)

	serverCtx := NewServerCtx(
		WithDB(db),
		WithDao(d),
		WithKv(store),
		WithCached(cached.NewCache(context.Background(), store)),
	)
	serverCtx.C = c
	serverCtx.MarketAddress = common.HexToAddress(c.Marketplace.Address)
	serverCtx.TradingFee = tradingFee
	return serverCtx, nil
}

// MigrateLedger creates the marketplace tables.
func MigrateLedger(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Collection{},
		&model.Item{},
		&model.Permission{},
		&model.Listing{},
		&model.Offer{},
		&model.Balance{},
		&model.Activity{},
		&model.User{},
	)
	if err != nil {
		return errors.Wrap(err, "failed on migrate ledger tables")
	}
	return nil
}
