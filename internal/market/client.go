package market

import (
	"context"
	"time"

	"github.com/novanft/mktcli/internal/wallet"
)

// Client assembles the marketplace surface: the session manager, the handle
// derivation, the listing store, and the write coordinator. It owns the
// session-change subscription — when the account changes, the handles are
// rederived, the store is retargeted, and a fresh sync is kicked off before
// anything else reads the snapshot.
type Client struct {
	sessions *wallet.SessionManager
	binder   *Binder
	store    *Store
	coord    *Coordinator
}

// NewClient wires the marketplace client together. The first refresh is the
// caller's to trigger (Refresh or Connect); construction performs no network
// traffic.
func NewClient(sessions *wallet.SessionManager, binder *Binder) *Client {
	c := &Client{
		sessions: sessions,
		binder:   binder,
	}
	c.store = NewStore(binder.Bind(nil).Reader)
	c.coord = NewCoordinator(c.Handles, c.store)

	sessions.OnSessionChanged(c.handleSessionChanged)
	if s := sessions.Session(); s != nil {
		c.store.SetAccount(s.Account)
	}
	return c
}

// Connect establishes a wallet session and runs the initial sync. A connect
// whose sync fails still leaves the session established; the error reports
// the sync failure so the caller can retry Refresh.
func (c *Client) Connect(ctx context.Context) (*wallet.Session, error) {
	s, err := c.sessions.Connect(ctx)
	if err != nil {
		return nil, err
	}
	return s, c.store.Refresh(ctx)
}

// Session returns the current wallet session, or nil when disconnected.
func (c *Client) Session() *wallet.Session {
	return c.sessions.Session()
}

// Handles derives contract handles for the current session. Called per
// operation, never cached, so a session change can never leave a stale
// authenticated handle in play.
func (c *Client) Handles() Handles {
	return c.binder.Bind(c.sessions.Session())
}

// Store exposes the synced listing and proceeds snapshot.
func (c *Client) Store() *Store { return c.store }

// Coordinator exposes the write path.
func (c *Client) Coordinator() *Coordinator { return c.coord }

// Refresh resyncs the store from the chain.
func (c *Client) Refresh(ctx context.Context) error {
	return c.store.Refresh(ctx)
}

// Watch refreshes the store every interval until ctx is cancelled, invoking
// onSync after each attempt with its outcome. The first refresh runs
// immediately.
func (c *Client) Watch(ctx context.Context, interval time.Duration, onSync func(error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		err := c.store.Refresh(ctx)
		if onSync != nil {
			onSync(err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Close releases the session subscription.
func (c *Client) Close() {
	c.sessions.Close()
}

// handleSessionChanged retargets the store at the new session's account and
// resyncs so the snapshot never shows another account's proceeds. The
// refresh is best-effort; a failure keeps the previous listing snapshot.
func (c *Client) handleSessionChanged(s *wallet.Session) {
	account := ""
	if s != nil {
		account = s.Account
	}
	c.store.SetAccount(account)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = c.store.Refresh(ctx)
}
