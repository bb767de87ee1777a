package svc

import (
	cached "NFTMarketLedger/src/cache"
	"NFTMarketLedger/src/dao"
	"NFTMarketLedger/src/pkg/xkv"

	"gorm.io/gorm"
)

type CtxConfig struct {
	db      *gorm.DB
	dao     *dao.Dao
	KvStore *xkv.Store
	Cached  *cached.Cached
}

type CtxOption func(conf *CtxConfig)

// NewServerCtx assembles a server context from options; tests use it to wire
// an in-memory store without the full service bootstrap.
func NewServerCtx(options ...CtxOption) *ServerCtx {
	c := &CtxConfig{}
	for _, opt := range options {
		opt(c)
	}
	return &ServerCtx{
		DB:      c.db,
		Dao:     c.dao,
		KvStore: c.KvStore,
		Cached:  c.Cached,
	}
}

func WithDB(db *gorm.DB) CtxOption {
	return func(conf *CtxConfig) {
		conf.db = db
	}
}

func WithDao(dao *dao.Dao) CtxOption {
	return func(conf *CtxConfig) {
		conf.dao = dao
	}
}

func WithKv(kv *xkv.Store) CtxOption {
	return func(conf *CtxConfig) {
		conf.KvStore = kv
	}
}

func WithCached(cached *cached.Cached) CtxOption {
	return func(conf *CtxConfig) {
		conf.Cached = cached
	}
}
