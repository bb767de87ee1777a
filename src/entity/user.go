package entity

type UserLoginMessageRes struct {
	Address string `json:"address"`
	Message string `json:"message"`
}

type LoginReq struct {
	Address   string `json:"address"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

type UserLoginInfo struct {
	Token     string `json:"token"`
	IsAllowed bool   `json:"is_allowed"`
}

type UserSignStatusRes struct {
	IsSigned bool `json:"is_signed"`
}
