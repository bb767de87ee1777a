package service

import (
	"context"
	"crypto/ecdsa"
	"testing"
	"time"

	cached "NFTMarketLedger/src/cache"
	"NFTMarketLedger/src/config"
	"NFTMarketLedger/src/dao"
	"NFTMarketLedger/src/eip712"
	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testMarketAddr = "0x00000000000000000000000000000000000000aa"
	testFee        = 30000
)

func newTestCtx(t *testing.T) *svc.ServerCtx {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, svc.MigrateLedger(db))

	serverCtx := svc.NewServerCtx(
		svc.WithDB(db),
		svc.WithDao(dao.New(context.Background(), db, nil)),
		svc.WithCached(cached.NewCache(context.Background(), nil)),
	)
	serverCtx.C = &config.Config{
		ProjectCfg: &config.ProjectCfg{Name: "market-ledger-test"},
		Marketplace: &config.Marketplace{
			Address:       testMarketAddr,
			TradingFee:    "30000",
			PermitVersion: "1",
		},
	}
	serverCtx.MarketAddress = common.HexToAddress(testMarketAddr)
	serverCtx.TradingFee = decimal.NewFromInt(testFee)
	return serverCtx
}

type wallet struct {
	key  *ecdsa.PrivateKey
	addr string
}

func newWallet(t *testing.T) wallet {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return wallet{key: key, addr: crypto.PubkeyToAddress(key.PublicKey).Hex()}
}

type fixture struct {
	ctx        context.Context
	serverCtx  *svc.ServerCtx
	owner      wallet
	collection string
	name       string
}

// newFixture registers one collection owned by a fresh wallet and mints
// token 0 to it.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ctx:       context.Background(),
		serverCtx: newTestCtx(t),
		owner:     newWallet(t),
		name:      "Wired Ghosts",
	}
	col, err := CreateCollection(f.ctx, f.serverCtx, entity.CreateCollectionReq{
		Name:   f.name,
		Symbol: "WG",
		Caller: f.owner.addr,
	})
	require.NoError(t, err)
	f.collection = col.Address

	token, err := CreateToken(f.ctx, f.serverCtx, f.collection, entity.CreateTokenReq{
		Uri:    "ipfs://ghost/0",
		Caller: f.owner.addr,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0), token.TokenId)
	return f
}

func (f *fixture) signPermit(t *testing.T, w wallet, tokenId, nonce uint64, spender common.Address, deadline int64) string {
	t.Helper()
	domain := eip712.Domain{
		Name:              f.name,
		Version:           "1",
		VerifyingContract: common.HexToAddress(f.collection),
	}
	message := eip712.PermitMessage{
		Owner:    crypto.PubkeyToAddress(w.key.PublicKey),
		Spender:  spender,
		TokenId:  tokenId,
		Nonce:    nonce,
		Deadline: deadline,
	}
	sig, err := eip712.Sign(domain, message, w.key)
	require.NoError(t, err)
	return hexutil.Encode(sig)
}

// grant runs the full permit flow for the current owner of tokenId.
func (f *fixture) grant(t *testing.T, w wallet, tokenId uint64) {
	t.Helper()
	nonceRes, err := GetTokenNonce(f.ctx, f.serverCtx, f.collection, tokenId)
	require.NoError(t, err)
	deadline := time.Now().Add(time.Hour).Unix()
	sig := f.signPermit(t, w, tokenId, nonceRes.Nonce, f.serverCtx.MarketAddress, deadline)
	_, err = GrantPermission(f.ctx, f.serverCtx, entity.PermitReq{
		CollectionAddress: f.collection,
		TokenId:           tokenId,
		Deadline:          deadline,
		Signature:         sig,
	})
	require.NoError(t, err)
}

func (f *fixture) balanceOf(t *testing.T, addr string) string {
	t.Helper()
	res, err := GetBalance(f.ctx, f.serverCtx, addr)
	require.NoError(t, err)
	return res.Amount
}

func TestCreateCollectionDeterministicAddress(t *testing.T) {
	ctx := context.Background()
	serverCtx := newTestCtx(t)
	creator := newWallet(t)

	first, err := CreateCollection(ctx, serverCtx, entity.CreateCollectionReq{
		Name: "Alpha", Symbol: "A", Caller: creator.addr,
	})
	require.NoError(t, err)
	expected := utils.NormalizeAddress(
		crypto.CreateAddress(serverCtx.MarketAddress, 0).Hex())
	assert.Equal(t, expected, first.Address)

	second, err := CreateCollection(ctx, serverCtx, entity.CreateCollectionReq{
		Name: "Beta", Symbol: "B", Caller: creator.addr,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.Address, second.Address)
}

func TestCreateTokenSequentialIds(t *testing.T) {
	f := newFixture(t)

	token, err := CreateToken(f.ctx, f.serverCtx, f.collection, entity.CreateTokenReq{
		Uri: "ipfs://ghost/1", Caller: f.owner.addr,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), token.TokenId)

	stranger := newWallet(t)
	_, err = CreateToken(f.ctx, f.serverCtx, f.collection, entity.CreateTokenReq{
		Uri: "ipfs://ghost/2", Caller: stranger.addr,
	})
	require.ErrorIs(t, err, errcode.ErrNotCollectionOwner)

	_, err = CreateToken(f.ctx, f.serverCtx, "0x00000000000000000000000000000000000000ff", entity.CreateTokenReq{
		Uri: "ipfs://nowhere/0", Caller: f.owner.addr,
	})
	require.ErrorIs(t, err, errcode.ErrNotRegistered)
}

func TestPermitLifecycle(t *testing.T) {
	f := newFixture(t)
	deadline := time.Now().Add(time.Hour).Unix()

	nonceRes, err := GetTokenNonce(f.ctx, f.serverCtx, f.collection, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), nonceRes.Nonce)

	sig := f.signPermit(t, f.owner, 0, 0, f.serverCtx.MarketAddress, deadline)
	res, err := GrantPermission(f.ctx, f.serverCtx, entity.PermitReq{
		CollectionAddress: f.collection, TokenId: 0, Deadline: deadline, Signature: sig,
	})
	require.NoError(t, err)
	assert.True(t, res.Delegated)
	assert.Equal(t, uint64(1), res.Nonce)

	// the consumed nonce makes the same signature unverifiable
	_, err = GrantPermission(f.ctx, f.serverCtx, entity.PermitReq{
		CollectionAddress: f.collection, TokenId: 0, Deadline: deadline, Signature: sig,
	})
	require.ErrorIs(t, err, errcode.ErrInvalidSignature)

	revokeSig := f.signPermit(t, f.owner, 0, 1, eip712.ZeroAddress, deadline)
	res, err = RevokePermission(f.ctx, f.serverCtx, entity.PermitReq{
		CollectionAddress: f.collection, TokenId: 0, Deadline: deadline, Signature: revokeSig,
	})
	require.NoError(t, err)
	assert.False(t, res.Delegated)
	assert.Equal(t, uint64(2), res.Nonce)
}

func TestPermitExpired(t *testing.T) {
	f := newFixture(t)
	deadline := time.Now().Add(-time.Minute).Unix()
	sig := f.signPermit(t, f.owner, 0, 0, f.serverCtx.MarketAddress, deadline)

	_, err := GrantPermission(f.ctx, f.serverCtx, entity.PermitReq{
		CollectionAddress: f.collection, TokenId: 0, Deadline: deadline, Signature: sig,
	})
	require.ErrorIs(t, err, errcode.ErrPermitExpired)
}

func TestPermitWrongSigner(t *testing.T) {
	f := newFixture(t)
	stranger := newWallet(t)
	deadline := time.Now().Add(time.Hour).Unix()
	sig := f.signPermit(t, stranger, 0, 0, f.serverCtx.MarketAddress, deadline)

	_, err := GrantPermission(f.ctx, f.serverCtx, entity.PermitReq{
		CollectionAddress: f.collection, TokenId: 0, Deadline: deadline, Signature: sig,
	})
	require.ErrorIs(t, err, errcode.ErrInvalidSignature)

	nonceRes, err := GetTokenNonce(f.ctx, f.serverCtx, f.collection, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), nonceRes.Nonce, "rejected permit must not advance the nonce")
}

func TestListForSale(t *testing.T) {
	f := newFixture(t)

	_, err := ListForSale(f.ctx, f.serverCtx, entity.ListForSaleReq{
		CollectionAddress: f.collection, TokenId: 0, Price: "1000000",
		Caller: f.owner.addr, Value: "30000",
	})
	require.ErrorIs(t, err, errcode.ErrNotDelegated)

	f.grant(t, f.owner, 0)

	_, err = ListForSale(f.ctx, f.serverCtx, entity.ListForSaleReq{
		CollectionAddress: f.collection, TokenId: 0, Price: "1000000",
		Caller: f.owner.addr, Value: "29999",
	})
	require.ErrorIs(t, err, errcode.ErrInsufficientFee)

	listing, err := ListForSale(f.ctx, f.serverCtx, entity.ListForSaleReq{
		CollectionAddress: f.collection, TokenId: 0, Price: "1000000",
		Caller: f.owner.addr, Value: "30000",
	})
	require.NoError(t, err)
	assert.Equal(t, "1000000", listing.Price)

	_, err = ListForSale(f.ctx, f.serverCtx, entity.ListForSaleReq{
		CollectionAddress: f.collection, TokenId: 0, Price: "2000000",
		Caller: f.owner.addr, Value: "30000",
	})
	require.ErrorIs(t, err, errcode.ErrDuplicateListing)

	// the fee accrued to the marketplace's own balance
	assert.Equal(t, "30000", f.balanceOf(t, testMarketAddr))
	assert.Equal(t, "0", f.balanceOf(t, f.owner.addr))
}

func TestListForSaleOverpaidFeeRefunded(t *testing.T) {
	f := newFixture(t)
	f.grant(t, f.owner, 0)

	_, err := ListForSale(f.ctx, f.serverCtx, entity.ListForSaleReq{
		CollectionAddress: f.collection, TokenId: 0, Price: "1000000",
		Caller: f.owner.addr, Value: "50000",
	})
	require.NoError(t, err)
	assert.Equal(t, "30000", f.balanceOf(t, testMarketAddr))
	assert.Equal(t, "20000", f.balanceOf(t, f.owner.addr))
}

func TestWithdrawFromSale(t *testing.T) {
	f := newFixture(t)
	f.grant(t, f.owner, 0)

	_, err := ListForSale(f.ctx, f.serverCtx, entity.ListForSaleReq{
		CollectionAddress: f.collection, TokenId: 0, Price: "1000000",
		Caller: f.owner.addr, Value: "30000",
	})
	require.NoError(t, err)

	stranger := newWallet(t)
	err = WithdrawFromSale(f.ctx, f.serverCtx, f.collection, 0, stranger.addr)
	require.ErrorIs(t, err, errcode.ErrNotItemOwner)

	require.NoError(t, WithdrawFromSale(f.ctx, f.serverCtx, f.collection, 0, f.owner.addr))

	err = WithdrawFromSale(f.ctx, f.serverCtx, f.collection, 0, f.owner.addr)
	require.ErrorIs(t, err, errcode.ErrNoSuchListing)
}

func TestBuyItem(t *testing.T) {
	f := newFixture(t)
	f.grant(t, f.owner, 0)

	_, err := ListForSale(f.ctx, f.serverCtx, entity.ListForSaleReq{
		CollectionAddress: f.collection, TokenId: 0, Price: "1000000",
		Caller: f.owner.addr, Value: "30000",
	})
	require.NoError(t, err)

	buyer := newWallet(t)
	_, err = BuyItem(f.ctx, f.serverCtx, entity.BuyItemReq{
		CollectionAddress: f.collection, TokenId: 0, Caller: buyer.addr, Value: "999999",
	})
	require.ErrorIs(t, err, errcode.ErrInsufficientPayment)

	trade, err := BuyItem(f.ctx, f.serverCtx, entity.BuyItemReq{
		CollectionAddress: f.collection, TokenId: 0, Caller: buyer.addr, Value: "1000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "1000000", trade.Price)

	owner, err := GetItemOwner(f.ctx, f.serverCtx, f.collection, 0)
	require.NoError(t, err)
	assert.Equal(t, utils.NormalizeAddress(buyer.addr), owner)

	assert.Equal(t, "1000000", f.balanceOf(t, f.owner.addr))
	assert.Equal(t, "0", f.balanceOf(t, buyer.addr))

	// the listing is consumed with the trade
	_, err = GetListing(f.ctx, f.serverCtx, f.collection, 0)
	require.ErrorIs(t, err, errcode.ErrNoSuchListing)

	// the transfer consumed the delegation
	nonceRes, err := GetTokenNonce(f.ctx, f.serverCtx, f.collection, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), nonceRes.Nonce)
	_, err = ListForSale(f.ctx, f.serverCtx, entity.ListForSaleReq{
		CollectionAddress: f.collection, TokenId: 0, Price: "1",
		Caller: buyer.addr, Value: "30000",
	})
	require.ErrorIs(t, err, errcode.ErrNotDelegated)
}

func TestBuyItemOverpaymentCreditedBack(t *testing.T) {
	f := newFixture(t)
	f.grant(t, f.owner, 0)

	_, err := ListForSale(f.ctx, f.serverCtx, entity.ListForSaleReq{
		CollectionAddress: f.collection, TokenId: 0, Price: "1000000",
		Caller: f.owner.addr, Value: "30000",
	})
	require.NoError(t, err)

	buyer := newWallet(t)
	_, err = BuyItem(f.ctx, f.serverCtx, entity.BuyItemReq{
		CollectionAddress: f.collection, TokenId: 0, Caller: buyer.addr, Value: "1200000",
	})
	require.NoError(t, err)
	assert.Equal(t, "200000", f.balanceOf(t, buyer.addr))
	assert.Equal(t, "1000000", f.balanceOf(t, f.owner.addr))
}

func TestBuyUnlistedItem(t *testing.T) {
	f := newFixture(t)
	buyer := newWallet(t)
	_, err := BuyItem(f.ctx, f.serverCtx, entity.BuyItemReq{
		CollectionAddress: f.collection, TokenId: 0, Caller: buyer.addr, Value: "1000000",
	})
	require.ErrorIs(t, err, errcode.ErrNoSuchListing)
}

func TestRevokedListingCannotSettle(t *testing.T) {
	f := newFixture(t)
	f.grant(t, f.owner, 0)

	_, err := ListForSale(f.ctx, f.serverCtx, entity.ListForSaleReq{
		CollectionAddress: f.collection, TokenId: 0, Price: "1000000",
		Caller: f.owner.addr, Value: "30000",
	})
	require.NoError(t, err)

	deadline := time.Now().Add(time.Hour).Unix()
	nonceRes, err := GetTokenNonce(f.ctx, f.serverCtx, f.collection, 0)
	require.NoError(t, err)
	revokeSig := f.signPermit(t, f.owner, 0, nonceRes.Nonce, eip712.ZeroAddress, deadline)
	_, err = RevokePermission(f.ctx, f.serverCtx, entity.PermitReq{
		CollectionAddress: f.collection, TokenId: 0, Deadline: deadline, Signature: revokeSig,
	})
	require.NoError(t, err)

	buyer := newWallet(t)
	_, err = BuyItem(f.ctx, f.serverCtx, entity.BuyItemReq{
		CollectionAddress: f.collection, TokenId: 0, Caller: buyer.addr, Value: "1000000",
	})
	require.ErrorIs(t, err, errcode.ErrNotDelegated)

	// the failed settlement left the buyer uncharged and the item unmoved
	assert.Equal(t, "0", f.balanceOf(t, buyer.addr))
	owner, err := GetItemOwner(f.ctx, f.serverCtx, f.collection, 0)
	require.NoError(t, err)
	assert.Equal(t, utils.NormalizeAddress(f.owner.addr), owner)
}

func TestMakeOffer(t *testing.T) {
	f := newFixture(t)

	_, err := MakeOffer(f.ctx, f.serverCtx, entity.MakeOfferReq{
		CollectionAddress: f.collection, TokenId: 0, Caller: f.owner.addr, Value: "500000",
	})
	require.ErrorIs(t, err, errcode.ErrCallerIsOwner)

	bidder := newWallet(t)
	offer, err := MakeOffer(f.ctx, f.serverCtx, entity.MakeOfferReq{
		CollectionAddress: f.collection, TokenId: 0, Caller: bidder.addr, Value: "500000",
	})
	require.NoError(t, err)
	assert.Equal(t, "500000", offer.Amount)

	_, err = MakeOffer(f.ctx, f.serverCtx, entity.MakeOfferReq{
		CollectionAddress: f.collection, TokenId: 0, Caller: bidder.addr, Value: "600000",
	})
	require.ErrorIs(t, err, errcode.ErrDuplicateOffer)

	offers, err := GetItemOffers(f.ctx, f.serverCtx, f.collection, 0)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, utils.NormalizeAddress(bidder.addr), offers[0].Bidder)
}

func TestWithdrawOfferRefundsEscrow(t *testing.T) {
	f := newFixture(t)
	bidder := newWallet(t)

	_, err := MakeOffer(f.ctx, f.serverCtx, entity.MakeOfferReq{
		CollectionAddress: f.collection, TokenId: 0, Caller: bidder.addr, Value: "500000",
	})
	require.NoError(t, err)

	require.NoError(t, WithdrawOffer(f.ctx, f.serverCtx, f.collection, 0, bidder.addr))
	assert.Equal(t, "500000", f.balanceOf(t, bidder.addr))

	err = WithdrawOffer(f.ctx, f.serverCtx, f.collection, 0, bidder.addr)
	require.ErrorIs(t, err, errcode.ErrNoSuchOffer)
}

func TestRejectOffer(t *testing.T) {
	f := newFixture(t)
	bidder := newWallet(t)

	_, err := MakeOffer(f.ctx, f.serverCtx, entity.MakeOfferReq{
		CollectionAddress: f.collection, TokenId: 0, Caller: bidder.addr, Value: "500000",
	})
	require.NoError(t, err)

	stranger := newWallet(t)
	err = RejectOffer(f.ctx, f.serverCtx, entity.RejectOfferReq{
		CollectionAddress: f.collection, TokenId: 0, Bidder: bidder.addr, Caller: stranger.addr,
	})
	require.ErrorIs(t, err, errcode.ErrNotItemOwner)

	err = RejectOffer(f.ctx, f.serverCtx, entity.RejectOfferReq{
		CollectionAddress: f.collection, TokenId: 0, Bidder: bidder.addr, Caller: f.owner.addr,
	})
	require.NoError(t, err)
	assert.Equal(t, "500000", f.balanceOf(t, bidder.addr))

	err = RejectOffer(f.ctx, f.serverCtx, entity.RejectOfferReq{
		CollectionAddress: f.collection, TokenId: 0, Bidder: bidder.addr, Caller: f.owner.addr,
	})
	require.ErrorIs(t, err, errcode.ErrNoSuchOffer)
}

func TestApproveOffer(t *testing.T) {
	f := newFixture(t)
	f.grant(t, f.owner, 0)
	bidder := newWallet(t)

	_, err := MakeOffer(f.ctx, f.serverCtx, entity.MakeOfferReq{
		CollectionAddress: f.collection, TokenId: 0, Caller: bidder.addr, Value: "500000",
	})
	require.NoError(t, err)

	_, err = ApproveOffer(f.ctx, f.serverCtx, entity.ApproveOfferReq{
		CollectionAddress: f.collection, TokenId: 0, Bidder: bidder.addr,
		Caller: f.owner.addr, Value: "29999",
	})
	require.ErrorIs(t, err, errcode.ErrInsufficientFee)

	stranger := newWallet(t)
	_, err = ApproveOffer(f.ctx, f.serverCtx, entity.ApproveOfferReq{
		CollectionAddress: f.collection, TokenId: 0, Bidder: stranger.addr,
		Caller: f.owner.addr, Value: "30000",
	})
	require.ErrorIs(t, err, errcode.ErrNoSuchOffer)

	trade, err := ApproveOffer(f.ctx, f.serverCtx, entity.ApproveOfferReq{
		CollectionAddress: f.collection, TokenId: 0, Bidder: bidder.addr,
		Caller: f.owner.addr, Value: "30000",
	})
	require.NoError(t, err)
	assert.Equal(t, "500000", trade.Price)

	owner, err := GetItemOwner(f.ctx, f.serverCtx, f.collection, 0)
	require.NoError(t, err)
	assert.Equal(t, utils.NormalizeAddress(bidder.addr), owner)

	assert.Equal(t, "500000", f.balanceOf(t, f.owner.addr))
	assert.Equal(t, "30000", f.balanceOf(t, testMarketAddr))

	offers, err := GetItemOffers(f.ctx, f.serverCtx, f.collection, 0)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestDepositAndWithdrawFunds(t *testing.T) {
	f := newFixture(t)
	holder := newWallet(t)

	res, err := DepositFunds(f.ctx, f.serverCtx, entity.DepositReq{
		Address: holder.addr, Amount: "700",
	})
	require.NoError(t, err)
	assert.Equal(t, "700", res.Amount)

	_, err = WithdrawFunds(f.ctx, f.serverCtx, entity.WithdrawFundsReq{
		Address: holder.addr, Amount: "701",
	})
	require.ErrorIs(t, err, errcode.ErrInsufficientFunds)

	res, err = WithdrawFunds(f.ctx, f.serverCtx, entity.WithdrawFundsReq{
		Address: holder.addr, Amount: "700",
	})
	require.NoError(t, err)
	assert.Equal(t, "0", res.Amount)

	_, err = WithdrawFunds(f.ctx, f.serverCtx, entity.WithdrawFundsReq{
		Address: holder.addr, Amount: "1",
	})
	require.ErrorIs(t, err, errcode.ErrInsufficientFunds)
}

func TestMalformedCollectionAddressRejected(t *testing.T) {
	f := newFixture(t)
	caller := newWallet(t)

	err := WithdrawFromSale(f.ctx, f.serverCtx, "not-an-address", 0, caller.addr)
	require.ErrorIs(t, err, errcode.ErrInvalidParams)

	err = WithdrawOffer(f.ctx, f.serverCtx, "not-an-address", 0, caller.addr)
	require.ErrorIs(t, err, errcode.ErrInvalidParams)

	err = RejectOffer(f.ctx, f.serverCtx, entity.RejectOfferReq{
		CollectionAddress: "not-an-address", TokenId: 0,
		Bidder: caller.addr, Caller: f.owner.addr,
	})
	require.ErrorIs(t, err, errcode.ErrInvalidParams)
}

func TestActivityJournal(t *testing.T) {
	f := newFixture(t)
	f.grant(t, f.owner, 0)

	_, err := ListForSale(f.ctx, f.serverCtx, entity.ListForSaleReq{
		CollectionAddress: f.collection, TokenId: 0, Price: "1000000",
		Caller: f.owner.addr, Value: "30000",
	})
	require.NoError(t, err)

	buyer := newWallet(t)
	_, err = BuyItem(f.ctx, f.serverCtx, entity.BuyItemReq{
		CollectionAddress: f.collection, TokenId: 0, Caller: buyer.addr, Value: "1000000",
	})
	require.NoError(t, err)

	activities, err := GetActivities(f.ctx, f.serverCtx, entity.ActivityFilterParam{
		CollectionAddress: f.collection,
	})
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, a := range activities {
		seen[a.EventType] = true
	}
	assert.True(t, seen["CollectionCreated"])
	assert.True(t, seen["ItemCreated"])
	assert.True(t, seen["MarketplaceApprovedForToken"])
	assert.True(t, seen["ItemListedForSale"])
	assert.True(t, seen["TradeConfirmed"])
}
