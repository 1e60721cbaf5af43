package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novanft/mktcli/internal/ui"
	"github.com/novanft/mktcli/internal/wallet"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect an account and verify the network",
	Long: `Establish a session with the default (or --account) account. The
network guard verifies the wallet's active chain is the marketplace
chain, switching — and registering the chain first if the wallet does
not know it — before anything else runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newMarketClient()
		if err != nil {
			return err
		}
		defer client.Close()

		s, err := client.Connect(cmd.Context())
		if err != nil {
			switch {
			case errors.Is(err, wallet.ErrWalletUnavailable):
				return fmt.Errorf("no wallet available\n  Create an account with: mktcli account new <name>")
			case errors.Is(err, wallet.ErrUserRejected):
				return fmt.Errorf("connection rejected")
			case errors.Is(err, wallet.ErrNetworkSwitch):
				return fmt.Errorf("could not switch to %s: %w", cfg.Chain.DisplayName, err)
			}
			// Session is up; only the first sync failed.
			if s = client.Session(); s != nil {
				fmt.Println(ui.Warn("Connected, but the first listing sync failed: " + err.Error()))
			} else {
				return err
			}
		}

		fmt.Println(ui.Success("Connected"))
		fmt.Println(ui.KeyValueBlock("Session", [][2]string{
			{"Account", s.Account},
			{"Chain", fmt.Sprintf("%s (%s)", cfg.Chain.DisplayName, s.ChainID)},
			{"Listings", fmt.Sprintf("%d active", len(client.Store().Listings()))},
		}))
		return nil
	},
}
