package cmd

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/novanft/mktcli/internal/ui"
)

var watchInterval int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live listing board",
	Long: `Stream the marketplace's active listings into a live TUI table,
resyncing on a fixed interval. A failed sync keeps showing the last
good snapshot.

Keyboard controls:
  ↑↓ / j k   navigate rows
  r           refresh now
  q           quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newMarketClient()
		if err != nil {
			return err
		}
		defer client.Close()

		interval := time.Duration(watchInterval) * time.Second
		if watchInterval <= 0 {
			interval = time.Duration(cfg.WatchInterval) * time.Second
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		var prog *tea.Program

		m := ui.WatchModel{
			Chain:  cfg.Chain.DisplayName,
			Symbol: symbol(),
			RefreshFn: func() tea.Msg {
				if err := client.Refresh(ctx); err != nil {
					return ui.SyncStatusMsg{ErrMsg: err.Error()}
				}
				prog.Send(ui.ListingsMsg{Listings: client.Store().Listings()})
				return ui.SyncStatusMsg{SyncedAt: time.Now()}
			},
		}
		prog = tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))

		push := func(err error) {
			if err != nil {
				prog.Send(ui.SyncStatusMsg{ErrMsg: err.Error()})
				return
			}
			prog.Send(ui.ListingsMsg{Listings: client.Store().Listings()})
			prog.Send(ui.SyncStatusMsg{SyncedAt: time.Now()})
		}

		go client.Watch(ctx, interval, push)

		_, err = prog.Run()
		return err
	},
}

func init() {
	watchCmd.Flags().IntVar(&watchInterval, "interval", 0, "refresh interval in seconds (default from config)")
}
