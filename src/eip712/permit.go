package eip712

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/pkg/errors"
)

// ZeroAddress is the spender of a revoke permit.
var ZeroAddress = common.Address{}

// Domain binds a permit to one collection: the collection's name and address
// are the typed-data domain. There is deliberately no chainId field, matching
// the wire format the collections verify.
type Domain struct {
	Name              string
	Version           string
	VerifyingContract common.Address
}

// PermitMessage is the signed payload. A grant sets Spender to the
// marketplace address, a revoke sets it to the zero address; everything else
// is shared so one verification routine serves both.
type PermitMessage struct {
	Owner    common.Address
	Spender  common.Address
	TokenId  uint64
	Nonce    uint64
	Deadline int64
}

const SignatureLength = 65

func typedData(d Domain, m PermitMessage) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "verifyingContract", Type: "address"},
			},
			"Permit": []apitypes.Type{
				{Name: "owner", Type: "address"},
				{Name: "spender", Type: "address"},
				{Name: "tokenId", Type: "uint256"},
				{Name: "nonce", Type: "uint256"},
				{Name: "deadline", Type: "uint256"},
			},
		},
		PrimaryType: "Permit",
		Domain: apitypes.TypedDataDomain{
			Name:              d.Name,
			Version:           d.Version,
			VerifyingContract: d.VerifyingContract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"owner":    m.Owner.Hex(),
			"spender":  m.Spender.Hex(),
			"tokenId":  (*math.HexOrDecimal256)(new(big.Int).SetUint64(m.TokenId)),
			"nonce":    (*math.HexOrDecimal256)(new(big.Int).SetUint64(m.Nonce)),
			"deadline": (*math.HexOrDecimal256)(big.NewInt(m.Deadline)),
		},
	}
}

// Digest computes the EIP-712 signing hash for the permit.
func Digest(d Domain, m PermitMessage) (common.Hash, error) {
	td := typedData(d, m)
	domainSeparator, err := td.HashStruct("EIP712Domain", td.Domain.Map())
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed on hash permit domain")
	}
	messageHash, err := td.HashStruct(td.PrimaryType, td.Message)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed on hash permit message")
	}
	raw := make([]byte, 0, 2+len(domainSeparator)+len(messageHash))
	raw = append(raw, 0x19, 0x01)
	raw = append(raw, domainSeparator...)
	raw = append(raw, messageHash...)
	return crypto.Keccak256Hash(raw), nil
}

// RecoverSigner recovers the address that produced sig over the permit.
// It is a pure function of its inputs and holds no ledger state. Both
// recovery id conventions (0/1 and 27/28) are accepted.
func RecoverSigner(d Domain, m PermitMessage, sig []byte) (common.Address, error) {
	if len(sig) != SignatureLength {
		return common.Address{}, errors.Errorf("invalid signature length %d", len(sig))
	}
	digest, err := Digest(d, m)
	if err != nil {
		return common.Address{}, err
	}
	normalized := make([]byte, SignatureLength)
	copy(normalized, sig)
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}
	pub, err := crypto.SigToPub(digest.Bytes(), normalized)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "failed on recover permit signer")
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Sign produces a wallet-style signature (V in 27/28) over the permit.
func Sign(d Domain, m PermitMessage, key *ecdsa.PrivateKey) ([]byte, error) {
	digest, err := Digest(d, m)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(digest.Bytes(), key)
	if err != nil {
		return nil, errors.Wrap(err, "failed on sign permit")
	}
	sig[64] += 27
	return sig, nil
}
