package entity

type DepositReq struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

type WithdrawFundsReq struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

type BalanceRes struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}
