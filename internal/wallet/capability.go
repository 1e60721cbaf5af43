package wallet

import (
	"context"
	"errors"
)

// Errors.
var (
	// ErrWalletUnavailable means no wallet capability is present at all.
	// Write paths are dead; read-only queries still work.
	ErrWalletUnavailable = errors.New("no wallet available")
	// ErrUserRejected means the user declined an account-access or signing
	// prompt. Recoverable; the user may retry.
	ErrUserRejected = errors.New("request rejected by user")
	// ErrChainUnrecognized is the distinguished signal a provider returns
	// from SwitchChain when the target chain is not registered with it.
	ErrChainUnrecognized = errors.New("chain not registered with wallet")
	// ErrNetworkSwitch means the provider could not be moved to the
	// marketplace's network; no session is established.
	ErrNetworkSwitch = errors.New("network switch failed")
)

// ChainParams is the metadata needed to register a network with a provider
// that does not know it yet.
type ChainParams struct {
	ChainID          string // 0x-prefixed hex
	DisplayName      string
	RPCURLs          []string
	CurrencyName     string
	CurrencySymbol   string
	CurrencyDecimals int
}

// Provider is the wallet capability. It is always passed in explicitly so a
// test double can stand in for the real thing; nothing in this package
// reaches for ambient state.
type Provider interface {
	// RequestAccounts asks for account access and returns the current
	// account list. Fails with ErrUserRejected when declined.
	RequestAccounts(ctx context.Context) ([]string, error)
	// ChainID returns the provider's active chain id as 0x-prefixed hex.
	ChainID(ctx context.Context) (string, error)
	// SwitchChain asks the provider to change its active chain. Returns
	// ErrChainUnrecognized when the chain is unknown to the provider.
	SwitchChain(ctx context.Context, chainID string) error
	// AddChain registers a chain with the provider.
	AddChain(ctx context.Context, params ChainParams) error
	// OnAccountsChanged subscribes fn to account-change notifications.
	// The returned function removes the subscription; calling it more than
	// once is harmless.
	OnAccountsChanged(fn func(accounts []string)) (unsubscribe func())
}
