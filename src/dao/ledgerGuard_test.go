package dao

import (
	"context"
	"testing"

	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Balance{}, &model.Permission{}))
	return New(context.Background(), db, nil)
}

func TestCreditBalanceAccumulatesInSQL(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	addr := "0x00000000000000000000000000000000000000b1"

	// first credit creates the row, second increments it in place
	require.NoError(t, d.CreditBalanceTx(ctx, d.DB, addr, decimal.NewFromInt(50)))
	require.NoError(t, d.CreditBalanceTx(ctx, d.DB, addr, decimal.NewFromInt(50)))

	amount, err := d.QueryBalance(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, "100", amount.String())
}

func TestDebitBalanceGuarded(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	addr := "0x00000000000000000000000000000000000000b2"

	err := d.DebitBalanceTx(ctx, d.DB, addr, decimal.NewFromInt(1))
	require.ErrorIs(t, err, errcode.ErrInsufficientFunds)

	require.NoError(t, d.CreditBalanceTx(ctx, d.DB, addr, decimal.NewFromInt(100)))

	err = d.DebitBalanceTx(ctx, d.DB, addr, decimal.NewFromInt(101))
	require.ErrorIs(t, err, errcode.ErrInsufficientFunds)

	require.NoError(t, d.DebitBalanceTx(ctx, d.DB, addr, decimal.NewFromInt(100)))

	amount, err := d.QueryBalance(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, "0", amount.String())
}

// A sufficiency check read before the debit can go stale; the debit itself
// must still refuse to overdraw.
func TestDebitBalanceStaleCheckCannotOverdraw(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	addr := "0x00000000000000000000000000000000000000b3"

	require.NoError(t, d.CreditBalanceTx(ctx, d.DB, addr, decimal.NewFromInt(100)))

	balance, err := d.GetBalanceTx(ctx, d.DB, addr)
	require.NoError(t, err)
	require.True(t, balance.Amount.GreaterThanOrEqual(decimal.NewFromInt(100)))

	// two payouts issued against the same observed balance
	require.NoError(t, d.DebitBalanceTx(ctx, d.DB, addr, decimal.NewFromInt(100)))
	err = d.DebitBalanceTx(ctx, d.DB, addr, decimal.NewFromInt(100))
	require.ErrorIs(t, err, errcode.ErrInsufficientFunds)

	amount, err := d.QueryBalance(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, "0", amount.String())
}

func TestSetPermissionConsumesVerifiedNonceOnce(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	collection := "0x00000000000000000000000000000000000000c1"

	require.NoError(t, d.AddPermissionTx(ctx, d.DB, &model.Permission{
		CollectionAddress: collection,
		TokenId:           0,
		Nonce:             0,
		Delegated:         false,
	}))

	require.NoError(t, d.SetPermissionTx(ctx, d.DB, collection, 0, 0, true))

	// a second submission verified against the same nonce must not land
	err := d.SetPermissionTx(ctx, d.DB, collection, 0, 0, false)
	require.ErrorIs(t, err, errcode.ErrInvalidSignature)

	permission, err := d.QueryPermission(ctx, collection, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), permission.Nonce)
	assert.True(t, permission.Delegated)
}
