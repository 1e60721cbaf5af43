package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novanft/mktcli/internal/market"
	"github.com/novanft/mktcli/internal/ui"
	"github.com/novanft/mktcli/internal/wallet"
)

var (
	sellPrice    string
	sellQuantity string
	sellYes      bool
)

var sellCmd = &cobra.Command{
	Use:   "sell <asset-contract> <token-id>",
	Short: "List an asset for sale",
	Long: `Create a listing for an asset you own. Without --quantity a single
token is listed at the given price; with --quantity a batch is listed
at a per-unit price.

Examples:
  mktcli sell 0xAsset 42 --price 1.5
  mktcli sell 0xAsset 7 --quantity 100 --price 0.05`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := wallet.NormalizeAddress(args[0])
		if err != nil {
			return fmt.Errorf("asset contract: %w", err)
		}
		form := market.ListingForm{
			AssetContract: asset,
			AssetID:       args[1],
			Quantity:      sellQuantity,
			Price:         sellPrice,
		}

		client, err := newMarketClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if _, err := client.Connect(cmd.Context()); err != nil {
			return err
		}

		label := fmt.Sprintf("List %s #%s for %s %s?", ui.TruncateAddr(args[0]), args[1], sellPrice, symbol())
		if sellQuantity != "" {
			label = fmt.Sprintf("List %s × %s #%s at %s %s per unit?", sellQuantity, ui.TruncateAddr(args[0]), args[1], sellPrice, symbol())
		}
		if !sellYes && !ui.Confirm(label) {
			fmt.Println(ui.Meta("Cancelled."))
			return nil
		}

		sp := ui.NewSpinner("Submitting listing…")
		sp.Start()
		res, err := client.Coordinator().CreateListing(cmd.Context(), form)
		sp.Stop()
		if err != nil {
			return err
		}

		printResult("Listing created", res)
		return nil
	},
}

// printResult reports a confirmed action uniformly across sell, buy, and
// withdraw.
func printResult(headline string, res *market.Result) {
	fmt.Println(ui.Success(headline))
	pairs := [][2]string{
		{"Tx hash", res.Hash},
	}
	if res.Receipt != nil {
		pairs = append(pairs,
			[2]string{"Block", fmt.Sprintf("%d", res.Receipt.BlockNumber)},
			[2]string{"Gas used", fmt.Sprintf("%d", res.Receipt.GasUsed)},
		)
	}
	fmt.Println(ui.KeyValueBlock("Transaction", pairs))
	if res.RefreshErr != nil {
		fmt.Println(ui.Warn("Confirmed, but the listing sync failed: " + res.RefreshErr.Error()))
		fmt.Println(ui.Hint("Run `mktcli listings` to retry."))
	}
}

func init() {
	sellCmd.Flags().StringVar(&sellPrice, "price", "", "price in whole units, e.g. 1.5 (per unit with --quantity)")
	sellCmd.Flags().StringVar(&sellQuantity, "quantity", "", "number of units for a batch listing")
	sellCmd.Flags().BoolVarP(&sellYes, "yes", "y", false, "skip the confirmation prompt")
	sellCmd.MarkFlagRequired("price") //nolint:errcheck
}
