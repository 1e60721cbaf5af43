package market

import (
	"math/big"

	"github.com/novanft/mktcli/internal/wallet"
)

// Handles is one derivation of contract bindings. The read-only handle is
// always present; the authenticated one exists exactly when a session does.
type Handles struct {
	Reader *Reader
	Writer MarketWriter // nil without a session
}

// Binder derives contract handles from the current session and fixed
// configuration. Bind is a pure function: fresh handles every call, nothing
// mutated in place, so a stale handle can never survive a session change.
type Binder struct {
	marketplace string
	readRPC     string
	chainID     *big.Int
	signerFor   func(account string) (TxSigner, error)
}

// NewBinder creates a Binder. signerFor resolves a session account to its
// transaction signer; it is only consulted when a session is present.
func NewBinder(marketplace, readRPC string, chainID *big.Int, signerFor func(account string) (TxSigner, error)) *Binder {
	return &Binder{
		marketplace: marketplace,
		readRPC:     readRPC,
		chainID:     chainID,
		signerFor:   signerFor,
	}
}

// Bind derives handles for the given session. A nil session, or an account
// with no resolvable signer, yields a read-only Handles.
func (b *Binder) Bind(s *wallet.Session) Handles {
	h := Handles{
		Reader: NewReader(b.readRPC, b.marketplace),
	}
	if s == nil || s.Account == "" || b.signerFor == nil {
		return h
	}
	signer, err := b.signerFor(s.Account)
	if err != nil {
		return h
	}
	h.Writer = NewWriter(b.readRPC, b.marketplace, b.chainID, signer)
	return h
}
