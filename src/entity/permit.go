package entity

type PermitReq struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	Deadline          int64  `json:"deadline"`
	Signature         string `json:"signature"` // 65-byte hex, 0x-prefixed
}

type TokenNonceRes struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	Nonce             uint64 `json:"nonce"`
}

type PermissionRes struct {
	CollectionAddress string `json:"collection_address"`
	TokenId           uint64 `json:"token_id"`
	Nonce             uint64 `json:"nonce"`
	Delegated         bool   `json:"delegated"`
}
