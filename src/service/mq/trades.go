package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"NFTMarketLedger/src/pkg/xkv"
	"NFTMarketLedger/src/pkg/xzap"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const tradeFanoutKey = "cache:%s:trade:confirmed"
const tradeFanoutReentranceKey = "cache:%s:trade:fanout:prevent:reentrancy:%s:%d"
const preventReentrancyPeriod = 10 // seconds

type ConfirmedTrade struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	Price             string `json:"price"`
}

// PushTradeConfirmed hands a settled trade to downstream indexers through a
// redis set. Best effort: fanout failures are logged, never propagated into
// the already-committed trade. A short reentrancy key suppresses duplicate
// pushes for the same token.
func PushTradeConfirmed(kvStore *xkv.Store, project, collectionAddr string, tokenId uint64, price string) {
	if kvStore == nil {
		return
	}
	if err := pushTradeConfirmed(kvStore, project, collectionAddr, tokenId, price); err != nil {
		xzap.WithContext(context.Background()).Warn("trade fanout failed",
			zap.String("collectionAddr", collectionAddr),
			zap.Uint64("tokenId", tokenId),
			zap.Error(err))
	}
}

func pushTradeConfirmed(kvStore *xkv.Store, project, collectionAddr string, tokenId uint64, price string) error {
	reentKey := fmt.Sprintf(tradeFanoutReentranceKey, project, collectionAddr, tokenId)
	pushed, err := kvStore.Get(reentKey)
	if err != nil {
		return errors.Wrap(err, "failed on check fanout reentrancy status")
	}
	if pushed != "" {
		return nil
	}

	trade := ConfirmedTrade{
		CollectionAddress: collectionAddr,
		TokenId:           tokenId,
		Price:             price,
	}
	rawInfo, err := json.Marshal(&trade)
	if err != nil {
		return errors.Wrap(err, "failed on marshal trade info")
	}
	if _, err := kvStore.Sadd(fmt.Sprintf(tradeFanoutKey, project), string(rawInfo)); err != nil {
		return errors.Wrap(err, "failed on push trade to fanout queue")
	}
	_ = kvStore.Setex(reentKey, "true", preventReentrancyPeriod)
	return nil
}
