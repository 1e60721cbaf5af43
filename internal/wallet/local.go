package wallet

import (
	"context"
	"fmt"
	"sync"
)

// LocalProvider implements Provider on top of locally stored accounts. It
// plays the part a browser-injected wallet plays for a dapp: it owns the
// account list, an active chain, and the set of chains it recognizes, and it
// pushes account-change notifications to subscribers.
type LocalProvider struct {
	mgr *Manager

	mu          sync.Mutex
	activeChain string
	chains      map[string]ChainParams
	subs        map[int]func([]string)
	nextSub     int

	// approve is consulted before granting account access. Nil means
	// auto-approve (non-interactive use).
	approve func(prompt string) bool
}

// LocalOption configures a LocalProvider.
type LocalOption func(*LocalProvider)

// WithApproval installs a prompt hook consulted by RequestAccounts. Returning
// false rejects the request.
func WithApproval(fn func(prompt string) bool) LocalOption {
	return func(p *LocalProvider) { p.approve = fn }
}

// WithKnownChain seeds the provider with an already-registered chain.
func WithKnownChain(params ChainParams) LocalOption {
	return func(p *LocalProvider) {
		p.chains[params.ChainID] = params
		if p.activeChain == "" {
			p.activeChain = params.ChainID
		}
	}
}

// NewLocalProvider creates a provider over the given account manager.
func NewLocalProvider(mgr *Manager, opts ...LocalOption) *LocalProvider {
	p := &LocalProvider{
		mgr:    mgr,
		chains: make(map[string]ChainParams),
		subs:   make(map[int]func([]string)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RequestAccounts returns the stored accounts, default first.
func (p *LocalProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	if p.approve != nil && !p.approve("Grant account access?") {
		return nil, ErrUserRejected
	}
	return p.accountList(), nil
}

// accountList returns stored account addresses, default first.
func (p *LocalProvider) accountList() []string {
	accounts := p.mgr.List()
	if len(accounts) == 0 {
		return nil
	}

	out := make([]string, 0, len(accounts))
	if def := p.mgr.Default(); def != nil {
		out = append(out, def.Address)
	}
	for _, a := range accounts {
		if len(out) > 0 && a.Address == out[0] {
			continue
		}
		out = append(out, a.Address)
	}
	return out
}

// ChainID returns the active chain.
func (p *LocalProvider) ChainID(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.activeChain == "" {
		return "", fmt.Errorf("no active chain")
	}
	return p.activeChain, nil
}

// SwitchChain activates chainID if it is registered.
func (p *LocalProvider) SwitchChain(ctx context.Context, chainID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.chains[chainID]; !ok {
		return fmt.Errorf("%w: %s", ErrChainUnrecognized, chainID)
	}
	p.activeChain = chainID
	return nil
}

// AddChain registers a chain so a later SwitchChain can activate it.
func (p *LocalProvider) AddChain(ctx context.Context, params ChainParams) error {
	if params.ChainID == "" {
		return fmt.Errorf("chain id is required")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chains[params.ChainID] = params
	return nil
}

// OnAccountsChanged subscribes fn to account-change notifications.
func (p *LocalProvider) OnAccountsChanged(fn func(accounts []string)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}
}

// NotifyAccountsChanged pushes the current account list to all subscribers.
// Account CRUD paths call this after changing the default account; no
// approval prompt is involved.
func (p *LocalProvider) NotifyAccountsChanged() {
	accounts := p.accountList()

	p.mu.Lock()
	subs := make([]func([]string), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(accounts)
	}
}
