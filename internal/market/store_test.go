package market

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a scriptable read path. onListings is invoked with the
// 1-based call number so tests can vary behavior per refresh.
type fakeSource struct {
	mu         sync.Mutex
	calls      int
	onListings func(call int) ([]Listing, error)
	proceeds   *big.Int
	procErr    error
}

func (f *fakeSource) Listings(ctx context.Context) ([]Listing, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	fn := f.onListings
	f.mu.Unlock()
	return fn(call)
}

func (f *fakeSource) Proceeds(ctx context.Context, account string) (*big.Int, error) {
	return f.proceeds, f.procErr
}

func active(id uint64, price int64) Listing {
	return Listing{ID: id, Price: big.NewInt(price), Active: true}
}

func TestRefreshFiltersInactiveAndMalformed(t *testing.T) {
	src := &fakeSource{onListings: func(int) ([]Listing, error) {
		return []Listing{
			active(1, 100),
			{ID: 2, Price: big.NewInt(100), Active: false},
			{ID: 3, Price: big.NewInt(0), Active: true},
			{ID: 4, Price: nil, Active: true},
			{ID: 5, Price: big.NewInt(50), Remaining: big.NewInt(-1), Active: true},
			{ID: 6, Price: big.NewInt(50), Remaining: big.NewInt(10), Active: true},
		}, nil
	}}

	s := NewStore(src)
	require.NoError(t, s.Refresh(context.Background()))

	got := s.Listings()
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(6), got[1].ID)
}

func TestRefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	src := &fakeSource{onListings: func(call int) ([]Listing, error) {
		if call == 1 {
			return []Listing{active(1, 100)}, nil
		}
		return nil, errors.New("rpc down")
	}}

	s := NewStore(src)
	require.NoError(t, s.Refresh(context.Background()))

	err := s.Refresh(context.Background())
	require.ErrorIs(t, err, ErrSync)

	got := s.Listings()
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].ID)
}

func TestRefreshFetchesProceedsForAccount(t *testing.T) {
	src := &fakeSource{
		onListings: func(int) ([]Listing, error) { return nil, nil },
		proceeds:   big.NewInt(777),
	}

	s := NewStore(src)
	assert.Nil(t, s.Proceeds())

	s.SetAccount("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	require.NoError(t, s.Refresh(context.Background()))
	require.NotNil(t, s.Proceeds())
	assert.Equal(t, int64(777), s.Proceeds().Int64())
}

func TestSetAccountDropsStaleProceeds(t *testing.T) {
	src := &fakeSource{
		onListings: func(int) ([]Listing, error) { return nil, nil },
		proceeds:   big.NewInt(777),
	}

	s := NewStore(src)
	s.SetAccount("0x1111111111111111111111111111111111111111")
	require.NoError(t, s.Refresh(context.Background()))
	require.NotNil(t, s.Proceeds())

	s.SetAccount("0x2222222222222222222222222222222222222222")
	assert.Nil(t, s.Proceeds())

	s.SetAccount("")
	assert.Nil(t, s.Proceeds())
}

func TestRefreshProceedsFailureKeepsListings(t *testing.T) {
	src := &fakeSource{
		onListings: func(int) ([]Listing, error) { return []Listing{active(1, 100)}, nil },
		procErr:    errors.New("rpc down"),
	}

	s := NewStore(src)
	require.NoError(t, s.Refresh(context.Background()))
	require.Len(t, s.Listings(), 1)

	s.SetAccount("0x1111111111111111111111111111111111111111")
	err := s.Refresh(context.Background())
	require.ErrorIs(t, err, ErrSync)

	assert.Len(t, s.Listings(), 1)
	assert.Nil(t, s.Proceeds())
}

func TestStaleRefreshDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	src := &fakeSource{onListings: func(call int) ([]Listing, error) {
		if call == 1 {
			close(started)
			<-release
			return []Listing{active(1, 100)}, nil // stale result
		}
		return []Listing{active(2, 200)}, nil
	}}

	s := NewStore(src)

	done := make(chan error, 1)
	go func() { done <- s.Refresh(context.Background()) }()
	<-started

	// A second refresh overtakes the first while it is still in flight.
	require.NoError(t, s.Refresh(context.Background()))

	close(release)
	require.NoError(t, <-done)

	got := s.Listings()
	require.Len(t, got, 1)
	assert.Equal(t, uint64(2), got[0].ID, "late refresh must not overwrite the newer snapshot")
}

func TestGet(t *testing.T) {
	src := &fakeSource{onListings: func(int) ([]Listing, error) {
		return []Listing{active(1, 100), active(9, 300)}, nil
	}}

	s := NewStore(src)
	require.NoError(t, s.Refresh(context.Background()))

	l, ok := s.Get(9)
	require.True(t, ok)
	assert.Equal(t, int64(300), l.Price.Int64())

	_, ok = s.Get(404)
	assert.False(t, ok)
}

func TestListingsReturnsCopy(t *testing.T) {
	src := &fakeSource{onListings: func(int) ([]Listing, error) {
		return []Listing{active(1, 100)}, nil
	}}

	s := NewStore(src)
	require.NoError(t, s.Refresh(context.Background()))

	got := s.Listings()
	got[0].ID = 999

	fresh := s.Listings()
	assert.Equal(t, uint64(1), fresh[0].ID)
}
