package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novanft/mktcli/internal/ui"
)

var proceedsCmd = &cobra.Command{
	Use:   "proceeds",
	Short: "Show your withdrawable sale balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newMarketClient()
		if err != nil {
			return err
		}
		defer client.Close()

		s, err := client.Connect(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(ui.ProceedsBlock(s.Account, client.Store().Proceeds(), symbol()))
		return nil
	},
}
