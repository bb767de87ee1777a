package entity

// Value on the payable requests is the amount of funds attached to the call,
// in base units, as a decimal string.

type ListForSaleReq struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	Price             string `json:"price"`
	Caller            string `json:"caller"`
	Value             string `json:"value"`
}

type BuyItemReq struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	Caller            string `json:"caller"`
	Value             string `json:"value"`
}

type MakeOfferReq struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	Caller            string `json:"caller"`
	Value             string `json:"value"`
}

type RejectOfferReq struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	Bidder            string `json:"bidder"`
	Caller            string `json:"caller"`
}

type ApproveOfferReq struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	Bidder            string `json:"bidder"`
	Caller            string `json:"caller"`
	Value             string `json:"value"`
}

type ListingRes struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	Seller            string `json:"seller"`
	Price             string `json:"price"`
}

type OfferRes struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	Bidder            string `json:"bidder"`
	Amount            string `json:"amount"`
}

type TradeRes struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	From              string `json:"from"`
	To                string `json:"to"`
	Price             string `json:"price"`
}

type ItemDetailRes struct {
	CollectionAddress string      `json:"collection_address"`
	TokenId           uint64      `json:"token_id"`
	Owner             string      `json:"owner"`
	Uri               string      `json:"uri"`
	Listing           *ListingRes `json:"listing,omitempty"`
	OfferCount        int64       `json:"offer_count"`
}
