package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/novanft/mktcli/internal/market"
)

// ListingsMsg replaces the displayed listing set with a fresh snapshot.
type ListingsMsg struct {
	Listings []market.Listing
}

// SyncStatusMsg updates the sync status bar.
type SyncStatusMsg struct {
	Syncing  bool
	SyncedAt time.Time
	ErrMsg   string
}

// WatchModel is the Bubble Tea model for the live listing board. Snapshots
// are pushed in via ListingsMsg; the model never fetches on its own except
// through RefreshFn, wired by the command layer.
type WatchModel struct {
	Chain  string
	Symbol string

	// RefreshFn triggers a manual sync; its message is delivered back to
	// the model. Nil disables the shortcut.
	RefreshFn func() tea.Msg

	listings []market.Listing
	cursor   int
	status   SyncStatusMsg
	frame    int
	quitting bool
}

type watchTickMsg struct{}

func watchSpinTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return watchTickMsg{}
	})
}

func (m WatchModel) Init() tea.Cmd { return watchSpinTick() }

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.listings)-1 {
				m.cursor++
			}

		case "r":
			if m.RefreshFn != nil {
				m.status.Syncing = true
				return m, m.RefreshFn
			}
		}

	case watchTickMsg:
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, watchSpinTick()

	case ListingsMsg:
		m.listings = msg.Listings
		if m.cursor >= len(m.listings) {
			m.cursor = len(m.listings) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}

	case SyncStatusMsg:
		m.status = msg
	}

	return m, nil
}

// Selected returns the listing under the cursor.
func (m WatchModel) Selected() (market.Listing, bool) {
	if len(m.listings) == 0 || m.cursor >= len(m.listings) {
		return market.Listing{}, false
	}
	return m.listings[m.cursor], true
}

func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	spin := spinnerFrames[m.frame]

	title := fmt.Sprintf("👁  Live Listings  ·  %s", m.Chain)
	sb.WriteString(StyleTitle.Render(title) + "\n")

	switch {
	case m.status.ErrMsg != "":
		sb.WriteString(StyleError.Render("✗ sync failed: "+m.status.ErrMsg) + "\n\n")
	case m.status.Syncing:
		sb.WriteString(StyleInfo.Render(spin+" syncing…") + "\n\n")
	case !m.status.SyncedAt.IsZero():
		sb.WriteString(StyleMeta.Render("  last synced: "+m.status.SyncedAt.Format("15:04:05")) + "\n\n")
	default:
		sb.WriteString(StyleMeta.Render("  connecting…") + "\n\n")
	}

	totalWidth := 0
	for _, col := range ListingColumns {
		totalWidth += col.Width + 2
	}
	sep := StyleMeta.Render(strings.Repeat("─", totalWidth))

	var headers []string
	for _, col := range ListingColumns {
		headers = append(headers, padR(StyleDim.Render(col.Title), col.Width))
	}
	sb.WriteString(strings.Join(headers, "  ") + "\n")
	sb.WriteString(sep + "\n")

	if len(m.listings) == 0 {
		sb.WriteString(StyleMeta.Render("  No active listings.") + "\n")
	} else {
		for i, l := range m.listings {
			row := ListingRow(l, m.Symbol)
			var cells []string
			for j, col := range ListingColumns {
				cells = append(cells, padR(row[j], col.Width))
			}
			line := strings.Join(cells, "  ")
			if i == m.cursor {
				sb.WriteString(StyleSelected.Render(line) + "\n")
			} else {
				sb.WriteString(line + "\n")
			}
		}
		sb.WriteString(sep + "\n")
		sb.WriteString(StyleMeta.Render(fmt.Sprintf("  %d listing(s)", len(m.listings))) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(watchControls())
	sb.WriteString("\n")

	return sb.String()
}

func watchControls() string {
	sep := StyleMeta.Render("   ")
	var sb strings.Builder
	sb.WriteString(StyleMeta.Render("[ ↑↓ ]"))
	sb.WriteString(StyleMeta.Render(" navigate"))
	sb.WriteString(sep)
	sb.WriteString(StyleInfo.Render("[ r ]"))
	sb.WriteString(StyleMeta.Render(" refresh"))
	sb.WriteString(sep)
	sb.WriteString(StyleMeta.Render("[ q ]"))
	sb.WriteString(StyleMeta.Render(" quit"))
	return sb.String()
}
