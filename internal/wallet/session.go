package wallet

import (
	"context"
	"sync"
)

// Session is the client's binding to a connected account on the provider's
// active chain. It exists only while an account is connected; any account
// change destroys it and builds a fresh one, never patching in place.
type Session struct {
	Account string
	ChainID string
}

// SessionManager owns the provider connection: the current session and the
// account-change subscription. The subscription is acquired on construction
// and released exactly once by Close, whichever path triggers teardown.
type SessionManager struct {
	provider Provider
	guard    *NetworkGuard

	mu        sync.Mutex
	session   *Session
	listeners []func(*Session)

	unsub     func()
	closeOnce sync.Once
}

// NewSessionManager creates a manager around the given provider. A nil
// provider models the wallet capability being absent entirely: Connect fails
// with ErrWalletUnavailable, and no subscription is taken.
func NewSessionManager(p Provider, g *NetworkGuard) *SessionManager {
	m := &SessionManager{provider: p, guard: g}
	if p != nil {
		m.unsub = p.OnAccountsChanged(m.handleAccountsChanged)
	}
	return m
}

// Connect requests account access, drives the network guard, and establishes
// a session. The guard runs once per Connect call and nowhere else.
func (m *SessionManager) Connect(ctx context.Context) (*Session, error) {
	if m.provider == nil {
		return nil, ErrWalletUnavailable
	}

	accounts, err := m.provider.RequestAccounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrUserRejected
	}

	if err := m.guard.Ensure(ctx, m.provider); err != nil {
		return nil, err
	}

	chainID, err := m.provider.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	s := &Session{Account: accounts[0], ChainID: chainID}
	m.setSession(s)
	return s, nil
}

// Session returns the current session, or nil when disconnected.
func (m *SessionManager) Session() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// OnSessionChanged registers fn to run whenever the session is rebuilt
// (including to nil on disconnection). Downstream components rebind their
// contract handles from here.
func (m *SessionManager) OnSessionChanged(fn func(*Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Close releases the account-change subscription. Safe to call from any
// teardown path; the release happens once.
func (m *SessionManager) Close() {
	m.closeOnce.Do(func() {
		if m.unsub != nil {
			m.unsub()
		}
	})
}

// handleAccountsChanged rebuilds the session from scratch on every provider
// notification. An empty account list yields a nil session.
func (m *SessionManager) handleAccountsChanged(accounts []string) {
	var s *Session
	if len(accounts) > 0 {
		chainID, err := m.provider.ChainID(context.Background())
		if err != nil {
			chainID = ""
		}
		s = &Session{Account: accounts[0], ChainID: chainID}
	}
	m.setSession(s)
}

func (m *SessionManager) setSession(s *Session) {
	m.mu.Lock()
	m.session = s
	listeners := make([]func(*Session), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}
