package entity

type ActivityFilterParam struct {
	CollectionAddress string   `json:"collection_address"`
	EventTypes        []string `json:"event_types"`
	Page              int      `json:"page"`
	PageSize          int      `json:"page_size"`
}

type ActivityRes struct {
	EventType         string `json:"event_type"`
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	From              string `json:"from"`
	To                string `json:"to"`
	Amount            string `json:"amount"`
	Detail            string `json:"detail,omitempty"`
	CreateTime        int64  `json:"create_time"`
}

type HistorySaleRes struct {
	TokenId    uint64 `json:"token_id"`
	Price      string `json:"price"`
	From       string `json:"from"`
	To         string `json:"to"`
	CreateTime int64  `json:"create_time"`
}

type PortfolioItemRes struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	Uri               string `json:"uri"`
	ListPrice         string `json:"list_price,omitempty"`
}
