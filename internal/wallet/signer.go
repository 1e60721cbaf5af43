package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer produces raw signed transactions for one stored account. The
// private key stays in the keystore between calls.
type Signer struct {
	account *Account
	ks      KeystoreBackend
}

// NewSigner binds an account to its keystore.
func NewSigner(a *Account, ks KeystoreBackend) *Signer {
	return &Signer{account: a, ks: ks}
}

func (s *Signer) loadKey() (*ecdsa.PrivateKey, error) {
	hexKey, err := s.ks.Retrieve(s.account.KeyRef)
	if err != nil {
		return nil, fmt.Errorf("retrieving key: %w", err)
	}
	priv, err := crypto.HexToECDSA(stripHexPrefix(hexKey))
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}
	return priv, nil
}

// SignTx signs tx for chainID with the London signer and returns the
// binary-encoded result ready for eth_sendRawTransaction.
func (s *Signer) SignTx(tx *types.Transaction, chainID *big.Int) ([]byte, error) {
	priv, err := s.loadKey()
	if err != nil {
		return nil, err
	}
	signed, err := types.SignTx(tx, types.NewLondonSigner(chainID), priv)
	if err != nil {
		return nil, fmt.Errorf("signing transaction: %w", err)
	}
	raw, err := signed.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshaling signed tx: %w", err)
	}
	return raw, nil
}

// Address returns the signing account's checksummed address.
func (s *Signer) Address() string {
	return s.account.Address
}
