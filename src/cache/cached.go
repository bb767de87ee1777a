package cached

import (
	"context"

	"NFTMarketLedger/src/pkg/xkv"
)

// Cached is the read-side cache over the kv store. A nil kv store disables
// caching without changing call sites.
type Cached struct {
	ctx     context.Context
	kvStore *xkv.Store
}

func NewCache(ctx context.Context, kvStore *xkv.Store) *Cached {
	return &Cached{
		ctx:     ctx,
		kvStore: kvStore,
	}
}

func (c *Cached) enabled() bool {
	return c != nil && c.kvStore != nil
}
