package market

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novanft/mktcli/internal/wallet"
)

type stubSigner struct{ addr string }

func (s stubSigner) SignTx(tx *types.Transaction, chainID *big.Int) ([]byte, error) {
	return nil, errors.New("not signable in tests")
}
func (s stubSigner) Address() string { return s.addr }

func newTestBinder(signerFor func(string) (TxSigner, error)) *Binder {
	return NewBinder(
		"0x9999999999999999999999999999999999999999",
		"http://localhost:8545",
		big.NewInt(0x4ebf),
		signerFor,
	)
}

func TestBindWithoutSession(t *testing.T) {
	b := newTestBinder(func(string) (TxSigner, error) {
		t.Fatal("signerFor must not be consulted without a session")
		return nil, nil
	})

	h := b.Bind(nil)
	require.NotNil(t, h.Reader)
	assert.Nil(t, h.Writer)
}

func TestBindWithSession(t *testing.T) {
	addr := "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	b := newTestBinder(func(account string) (TxSigner, error) {
		assert.Equal(t, addr, account)
		return stubSigner{addr: addr}, nil
	})

	h := b.Bind(&wallet.Session{Account: addr, ChainID: "0x4ebf"})
	require.NotNil(t, h.Reader)
	require.NotNil(t, h.Writer)
	assert.Equal(t, addr, h.Writer.Account())
}

func TestBindUnresolvableSignerFallsBackToReadOnly(t *testing.T) {
	b := newTestBinder(func(string) (TxSigner, error) {
		return nil, errors.New("no key material")
	})

	h := b.Bind(&wallet.Session{Account: "0x1111111111111111111111111111111111111111"})
	require.NotNil(t, h.Reader)
	assert.Nil(t, h.Writer)
}

func TestBindDerivesFreshHandles(t *testing.T) {
	b := newTestBinder(func(account string) (TxSigner, error) {
		return stubSigner{addr: account}, nil
	})

	s := &wallet.Session{Account: "0x1111111111111111111111111111111111111111"}
	first := b.Bind(s)
	second := b.Bind(s)
	assert.NotSame(t, first.Reader, second.Reader)
}
