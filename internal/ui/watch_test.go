package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novanft/mktcli/internal/market"
)

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func watchWith(listings []market.Listing) WatchModel {
	m := WatchModel{Chain: "Monad Testnet", Symbol: "MON"}
	next, _ := m.Update(ListingsMsg{Listings: listings})
	return next.(WatchModel)
}

func TestWatchListingsMsgReplacesSnapshot(t *testing.T) {
	m := watchWith([]market.Listing{quantityListing()})
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, uint64(3), sel.ID)

	m = watchWith(nil)
	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestWatchCursorNavigation(t *testing.T) {
	a := quantityListing()
	b := quantityListing()
	b.ID = 9
	m := watchWith([]market.Listing{a, b})

	next, _ := m.Update(keyMsg("j"))
	m = next.(WatchModel)
	sel, _ := m.Selected()
	assert.Equal(t, uint64(9), sel.ID)

	// Cannot move past the last row.
	next, _ = m.Update(keyMsg("j"))
	m = next.(WatchModel)
	sel, _ = m.Selected()
	assert.Equal(t, uint64(9), sel.ID)

	next, _ = m.Update(keyMsg("k"))
	m = next.(WatchModel)
	sel, _ = m.Selected()
	assert.Equal(t, uint64(3), sel.ID)
}

func TestWatchCursorClampsOnShrink(t *testing.T) {
	a := quantityListing()
	b := quantityListing()
	b.ID = 9
	m := watchWith([]market.Listing{a, b})

	next, _ := m.Update(keyMsg("j"))
	m = next.(WatchModel)

	// The snapshot shrinks under the cursor.
	next, _ = m.Update(ListingsMsg{Listings: []market.Listing{a}})
	m = next.(WatchModel)
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, uint64(3), sel.ID)
}

func TestWatchQuit(t *testing.T) {
	m := watchWith(nil)
	next, cmd := m.Update(keyMsg("q"))
	assert.NotNil(t, cmd)
	assert.Empty(t, next.(WatchModel).View())
}

func TestWatchRefreshKeyTriggersRefreshFn(t *testing.T) {
	called := false
	m := watchWith(nil)
	m.RefreshFn = func() tea.Msg {
		called = true
		return SyncStatusMsg{SyncedAt: time.Now()}
	}

	_, cmd := m.Update(keyMsg("r"))
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, called)
}

func TestWatchViewShowsSyncError(t *testing.T) {
	m := watchWith(nil)
	next, _ := m.Update(SyncStatusMsg{ErrMsg: "rpc unreachable"})
	out := next.(WatchModel).View()
	assert.Contains(t, out, "rpc unreachable")
}

func TestWatchViewShowsListings(t *testing.T) {
	m := watchWith([]market.Listing{quantityListing()})
	out := m.View()
	assert.Contains(t, out, "Live Listings")
	assert.Contains(t, out, "0.5 MON/unit")
	assert.Contains(t, out, "1 listing(s)")
}
