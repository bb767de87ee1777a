package errcode

import "github.com/pkg/errors"

// Err is a coded business error. The message of the marketplace errors keeps
// the wording of the on-chain revert strings so clients can match on either.
type Err struct {
	code int
	msg  string
}

func NewErr(code int, msg string) *Err {
	return &Err{code: code, msg: msg}
}

// NewCustomErr wraps a plain message as a generic business error.
func NewCustomErr(msg string) *Err {
	return NewErr(CodeCustom, msg)
}

func (e *Err) Error() string {
	return e.msg
}

func (e *Err) Code() int {
	return e.code
}

// AsErr unwraps err down to a coded error if there is one in the chain.
func AsErr(err error) (*Err, bool) {
	var ce *Err
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

const (
	CodeCustom        = 40000
	CodeInvalidParams = 40001
	CodeUnexpected    = 50000
	CodeTokenExpire   = 40100

	codeMarketplaceBase = 42000
)

var (
	ErrInvalidParams = NewErr(CodeInvalidParams, "invalid params")
	ErrUnexpected    = NewErr(CodeUnexpected, "service unexpected error")
	ErrTokenExpire   = NewErr(CodeTokenExpire, "login token expired")
)

// Marketplace state machine errors.
var (
	ErrNotRegistered       = NewErr(codeMarketplaceBase+1, "Address is not a Marketplace Collection.")
	ErrNotCollectionOwner  = NewErr(codeMarketplaceBase+2, "User is not the owner of the collection.")
	ErrNoSuchItem          = NewErr(codeMarketplaceBase+3, "Token does not exist in this collection.")
	ErrNotItemOwner        = NewErr(codeMarketplaceBase+4, "User is not the owner of the token.")
	ErrPermitExpired       = NewErr(codeMarketplaceBase+5, "Permission to manage this token has expired.")
	ErrInvalidSignature    = NewErr(codeMarketplaceBase+6, "Invalid permission signature.")
	ErrNotDelegated        = NewErr(codeMarketplaceBase+7, "Marketplace hasn't been approved for management of this token.")
	ErrInsufficientFee     = NewErr(codeMarketplaceBase+8, "Deposited fee is insufficient to trade.")
	ErrNoSuchListing       = NewErr(codeMarketplaceBase+9, "Item is not listed for sale.")
	ErrDuplicateListing    = NewErr(codeMarketplaceBase+10, "Item is already listed for sale.")
	ErrInsufficientPayment = NewErr(codeMarketplaceBase+11, "Deposited payment is insufficient to buy this item.")
	ErrCallerIsOwner       = NewErr(codeMarketplaceBase+12, "Owner of the token cannot make an offer for it.")
	ErrDuplicateOffer      = NewErr(codeMarketplaceBase+13, "An offer for this token has already been made.")
	ErrNoSuchOffer         = NewErr(codeMarketplaceBase+14, "No such offer for this token and bidder.")
	ErrInsufficientFunds   = NewErr(codeMarketplaceBase+15, "Insufficient funds to withdraw.")
)
