package entity

type CreateCollectionReq struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Caller string `json:"caller"`
}

type CreateCollectionRes struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Owner   string `json:"owner"`
}

type CreateTokenReq struct {
	Uri    string `json:"uri"`
	Caller string `json:"caller"`
}

type CreateTokenRes struct {
	TokenId           uint64 `json:"token_id"`
	CollectionAddress string `json:"collection_address"`
	Owner             string `json:"owner"`
	Uri               string `json:"uri"`
}

type CollectionDetailRes struct {
	Address    string `json:"address"`
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	Owner      string `json:"owner"`
	ItemAmount int64  `json:"item_amount"`
	FloorPrice string `json:"floor_price"`
}

type CollectionRankingRes struct {
	Address     string `json:"address"`
	Name        string `json:"name"`
	TradeCount  int64  `json:"trade_count"`
	TradeVolume string `json:"trade_volume"`
}
