package cached

import (
	"encoding/json"

	"NFTMarketLedger/src/entity"
)

const collectionDetailKeyPrefix = "cache:nml:collection:detail:"
const collectionDetailTTL = 60 // seconds

func collectionDetailKey(address string) string {
	return collectionDetailKeyPrefix + address
}

func (c *Cached) GetCollectionDetail(address string) *entity.CollectionDetailRes {
	if !c.enabled() {
		return nil
	}
	raw, err := c.kvStore.Get(collectionDetailKey(address))
	if err != nil || raw == "" {
		return nil
	}
	var detail entity.CollectionDetailRes
	if err := json.Unmarshal([]byte(raw), &detail); err != nil {
		return nil
	}
	return &detail
}

func (c *Cached) SetCollectionDetail(address string, detail *entity.CollectionDetailRes) {
	if !c.enabled() || detail == nil {
		return
	}
	raw, err := json.Marshal(detail)
	if err != nil {
		return
	}
	_ = c.kvStore.Setex(collectionDetailKey(address), string(raw), collectionDetailTTL)
}
