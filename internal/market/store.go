package market

import (
	"context"
	"fmt"
	"math/big"
	"sync"
)

// Source is the read path the store syncs from. *Reader satisfies it.
type Source interface {
	Listings(ctx context.Context) ([]Listing, error)
	Proceeds(ctx context.Context, account string) (*big.Int, error)
}

// Store caches the marketplace's listing set and the session account's
// proceeds balance. It is strictly a cache of remote truth: snapshots are
// replaced atomically and never patched, and a failed refresh leaves the
// previous snapshot in place.
type Store struct {
	src Source

	mu       sync.Mutex
	account  string
	listings []Listing
	proceeds *big.Int
	seq      uint64 // refresh tickets issued
	applied  uint64 // ticket of the exposed snapshot
}

// NewStore creates a Store over src.
func NewStore(src Source) *Store {
	return &Store{src: src}
}

// SetAccount changes whose proceeds the store tracks. Empty means no
// session; the stale balance is dropped immediately, the listing snapshot
// stays until the next refresh.
func (s *Store) SetAccount(account string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account != account {
		s.account = account
		s.proceeds = nil
	}
}

// Refresh fetches the full listing collection and, with a session account
// set, the proceeds balance, then swaps the snapshot in one step. Inactive
// and malformed (non-positive price, negative remainder) records never enter
// the snapshot. A late-finishing refresh that was overtaken by a newer one
// discards its result instead of overwriting.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	ticket := s.seq
	account := s.account
	s.mu.Unlock()

	fetched, err := s.src.Listings(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSync, err)
	}

	listings := make([]Listing, 0, len(fetched))
	for _, l := range fetched {
		if !l.Active {
			continue
		}
		if l.Price == nil || l.Price.Sign() <= 0 {
			continue
		}
		if l.Remaining != nil && l.Remaining.Sign() < 0 {
			continue
		}
		listings = append(listings, l)
	}

	var proceeds *big.Int
	if account != "" {
		proceeds, err = s.src.Proceeds(ctx, account)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSync, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket < s.applied {
		return nil // a newer refresh already landed
	}
	s.applied = ticket
	s.listings = listings
	if account == s.account {
		s.proceeds = proceeds
	}
	return nil
}

// Listings returns the exposed snapshot. Only active listings appear.
func (s *Store) Listings() []Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// Get returns the exposed listing with the given id.
func (s *Store) Get(id uint64) (Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.listings {
		if l.ID == id {
			return l, true
		}
	}
	return Listing{}, false
}

// Proceeds returns the last synced balance for the session account, or nil
// when no session is bound or no refresh has run since binding.
func (s *Store) Proceeds() *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.proceeds
}
