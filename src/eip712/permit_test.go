package eip712

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDomain() Domain {
	return Domain{
		Name:              "Wired Ghosts",
		Version:           "1",
		VerifyingContract: common.HexToAddress("0x1111111111111111111111111111111111111111"),
	}
}

func TestSignRecoverRoundtrip(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	owner := crypto.PubkeyToAddress(key.PublicKey)

	msg := PermitMessage{
		Owner:    owner,
		Spender:  common.HexToAddress("0x2222222222222222222222222222222222222222"),
		TokenId:  7,
		Nonce:    3,
		Deadline: 1700000000,
	}

	sig, err := Sign(testDomain(), msg, key)
	require.NoError(t, err)
	require.Len(t, sig, SignatureLength)
	// wallet convention
	assert.True(t, sig[64] == 27 || sig[64] == 28)

	signer, err := RecoverSigner(testDomain(), msg, sig)
	require.NoError(t, err)
	assert.Equal(t, owner, signer)
}

func TestRecoverAcceptsBothRecoveryIdConventions(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	owner := crypto.PubkeyToAddress(key.PublicKey)

	msg := PermitMessage{Owner: owner, Spender: ZeroAddress, TokenId: 1, Nonce: 0, Deadline: 2000000000}
	sig, err := Sign(testDomain(), msg, key)
	require.NoError(t, err)

	signer, err := RecoverSigner(testDomain(), msg, sig)
	require.NoError(t, err)
	assert.Equal(t, owner, signer)

	raw := make([]byte, SignatureLength)
	copy(raw, sig)
	raw[64] -= 27
	signer, err = RecoverSigner(testDomain(), msg, raw)
	require.NoError(t, err)
	assert.Equal(t, owner, signer)
}

func TestRecoverWrongKey(t *testing.T) {
	ownerKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	otherKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	msg := PermitMessage{
		Owner:    crypto.PubkeyToAddress(ownerKey.PublicKey),
		Spender:  common.HexToAddress("0x2222222222222222222222222222222222222222"),
		TokenId:  0,
		Nonce:    0,
		Deadline: 2000000000,
	}

	sig, err := Sign(testDomain(), msg, otherKey)
	require.NoError(t, err)

	signer, err := RecoverSigner(testDomain(), msg, sig)
	require.NoError(t, err)
	assert.NotEqual(t, msg.Owner, signer)
}

func TestTamperedMessageRecoversDifferentSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	owner := crypto.PubkeyToAddress(key.PublicKey)

	msg := PermitMessage{Owner: owner, Spender: ZeroAddress, TokenId: 4, Nonce: 1, Deadline: 2000000000}
	sig, err := Sign(testDomain(), msg, key)
	require.NoError(t, err)

	tampered := msg
	tampered.Nonce = 2
	signer, err := RecoverSigner(testDomain(), tampered, sig)
	if err == nil {
		assert.NotEqual(t, owner, signer)
	}
}

func TestGrantAndRevokeDigestsDiffer(t *testing.T) {
	owner := common.HexToAddress("0x3333333333333333333333333333333333333333")
	market := common.HexToAddress("0x2222222222222222222222222222222222222222")

	grant := PermitMessage{Owner: owner, Spender: market, TokenId: 9, Nonce: 5, Deadline: 2000000000}
	revoke := grant
	revoke.Spender = ZeroAddress

	grantDigest, err := Digest(testDomain(), grant)
	require.NoError(t, err)
	revokeDigest, err := Digest(testDomain(), revoke)
	require.NoError(t, err)
	assert.NotEqual(t, grantDigest, revokeDigest)
}

func TestDigestBoundToDomain(t *testing.T) {
	owner := common.HexToAddress("0x3333333333333333333333333333333333333333")
	msg := PermitMessage{Owner: owner, Spender: ZeroAddress, TokenId: 0, Nonce: 0, Deadline: 2000000000}

	d1 := testDomain()
	d2 := testDomain()
	d2.VerifyingContract = common.HexToAddress("0x4444444444444444444444444444444444444444")

	h1, err := Digest(d1, msg)
	require.NoError(t, err)
	h2, err := Digest(d2, msg)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestRecoverRejectsBadLength(t *testing.T) {
	msg := PermitMessage{TokenId: 1, Deadline: 2000000000}
	_, err := RecoverSigner(testDomain(), msg, make([]byte, 64))
	assert.Error(t, err)
}
