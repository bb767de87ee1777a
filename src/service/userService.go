package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/middleware"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/utils"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func getUserLoginMsgCacheKey(address string) string {
	return middleware.CR_LOGIN_MSG_KEY + ":" + strings.ToLower(address)
}

func getUserLoginTokenCacheKey(address string) string {
	return middleware.CR_LOGIN_TOKEN_KEY + ":" + strings.ToLower(address)
}

// GetLoginMessage issues a one-time login message bound to the address; the
// nonce lives in the kv store until signed or expired.
func GetLoginMessage(ctx context.Context, serverCtx *svc.ServerCtx, address string) (*entity.UserLoginMessageRes, error) {
	if !utils.IsValidAddress(address) {
		return nil, errcode.ErrInvalidParams
	}
	nonce := uuid.NewString()
	loginMsg := getLoginTemplate(nonce)
	err := serverCtx.KvStore.Setex(getUserLoginMsgCacheKey(address), nonce, 72*60*60)
	if err != nil {
		return nil, errors.Wrap(err, "failed on generate login msg")
	}
	return &entity.UserLoginMessageRes{Address: address, Message: loginMsg}, nil
}

func getLoginTemplate(nonce string) string {
	return fmt.Sprintf("Welcome to the Marketplace Ledger!\nNonce:%s", nonce)
}

// UserLogin verifies a personal-sign signature over the issued login message
// and hands back a session token.
func UserLogin(ctx context.Context, serverCtx *svc.ServerCtx, req entity.LoginReq) (*entity.UserLoginInfo, error) {
	res := entity.UserLoginInfo{}

	if !verifyLoginSignature(req.Message, req.Signature, req.Address) {
		return nil, errcode.ErrInvalidSignature
	}

	cachedNonce, err := serverCtx.KvStore.Get(getUserLoginMsgCacheKey(req.Address))
	if cachedNonce == "" || err != nil {
		return nil, errcode.ErrTokenExpire
	}
	split := strings.Split(req.Message, "Nonce:")
	if len(split) != 2 {
		return nil, errcode.ErrTokenExpire
	}
	loginNonce := strings.Trim(split[1], "\n")
	if loginNonce != cachedNonce {
		return nil, errcode.ErrTokenExpire
	}

	user, err := serverCtx.Dao.GetUser(ctx, req.Address)
	if err != nil {
		return nil, errors.Wrap(err, "failed on get user info")
	}
	if user.Id == 0 {
		if err := serverCtx.Dao.AddUser(ctx, req.Address); err != nil {
			return nil, errors.Wrap(err, "failed on create new user")
		}
	}

	tokenKey := getUserLoginTokenCacheKey(req.Address)
	userToken, err := middleware.AesEncryptOFB([]byte(tokenKey), []byte(middleware.CR_LOGIN_SALT))
	if err != nil {
		return nil, errors.Wrap(err, "failed on get user token")
	}
	if err := cacheUserToken(serverCtx, tokenKey, uuid.NewString()); err != nil {
		return nil, err
	}

	res.Token = hex.EncodeToString(userToken)
	res.IsAllowed = user.IsAllowed
	return &res, nil
}

func cacheUserToken(serverCtx *svc.ServerCtx, tokenKey string, token string) error {
	return serverCtx.KvStore.Setex(tokenKey, token, 30*24*60*60)
}

// verifyLoginSignature recovers the signer of an EIP-191 personal-sign
// message and checks it against the claimed address.
func verifyLoginSignature(message, signature, address string) bool {
	sig, err := hexutil.Decode(signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return false
	}
	normalized := make([]byte, crypto.SignatureLength)
	copy(normalized, sig)
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}
	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), normalized)
	if err != nil {
		return false
	}
	return utils.SameAddress(crypto.PubkeyToAddress(*pub).Hex(), address)
}

func GetUserSignStatus(ctx context.Context, serverCtx *svc.ServerCtx, address string) (*entity.UserSignStatusRes, error) {
	isSigned, err := serverCtx.Dao.GetUserSignStatus(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed on get user sign status")
	}
	return &entity.UserSignStatusRes{IsSigned: isSigned}, nil
}
