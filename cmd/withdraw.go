package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novanft/mktcli/internal/market"
	"github.com/novanft/mktcli/internal/ui"
)

var withdrawYes bool

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw your sale proceeds",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newMarketClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if _, err := client.Connect(cmd.Context()); err != nil {
			return err
		}

		balance := client.Store().Proceeds()
		if balance == nil || balance.Sign() == 0 {
			fmt.Println(ui.Meta("Nothing to withdraw."))
			return nil
		}

		prompt := fmt.Sprintf("Withdraw %s %s?", market.FormatEther(balance), symbol())
		if !withdrawYes && !ui.Confirm(prompt) {
			fmt.Println(ui.Meta("Cancelled."))
			return nil
		}

		sp := ui.NewSpinner("Withdrawing…")
		sp.Start()
		res, err := client.Coordinator().Withdraw(cmd.Context())
		sp.Stop()
		if err != nil {
			return err
		}

		printResult(fmt.Sprintf("Withdrew %s %s", market.FormatEther(balance), symbol()), res)
		return nil
	},
}

func init() {
	withdrawCmd.Flags().BoolVarP(&withdrawYes, "yes", "y", false, "skip the confirmation prompt")
}
