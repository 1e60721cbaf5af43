package cmd

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/novanft/mktcli/internal/market"
	"github.com/novanft/mktcli/internal/ui"
)

var (
	buyQuantity string
	buyYes      bool
)

var buyCmd = &cobra.Command{
	Use:   "buy <listing-id>",
	Short: "Buy from a listing",
	Long: `Purchase a listed asset. For a quantity-based listing pass --quantity;
the payment is computed exactly as unit price × quantity. Single-unit
listings are bought whole at their fixed price.

Examples:
  mktcli buy 3
  mktcli buy 7 --quantity 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid listing id %q", args[0])
		}

		client, err := newMarketClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if _, err := client.Connect(cmd.Context()); err != nil {
			return err
		}

		l, ok := client.Store().Get(id)
		if !ok {
			return fmt.Errorf("no active listing with id %d", id)
		}

		var qty *big.Int
		var cost *big.Int
		if l.QuantityBased() {
			if buyQuantity == "" {
				return fmt.Errorf("listing %d is quantity-based\n  Pass the unit count with --quantity", id)
			}
			qty, ok = new(big.Int).SetString(buyQuantity, 10)
			if !ok {
				return fmt.Errorf("invalid quantity %q", buyQuantity)
			}
			cost, err = market.ComputeCost(l.Price, qty)
			if err != nil {
				return err
			}
		} else {
			if buyQuantity != "" {
				fmt.Println(ui.Meta("Single-unit listing; --quantity ignored."))
			}
			cost = l.Price
		}

		prompt := fmt.Sprintf("Buy listing %d for %s %s?", id, market.FormatEther(cost), symbol())
		if !buyYes && !ui.Confirm(prompt) {
			fmt.Println(ui.Meta("Cancelled."))
			return nil
		}

		sp := ui.NewSpinner("Submitting purchase…")
		sp.Start()
		res, err := client.Coordinator().Buy(cmd.Context(), l, qty)
		sp.Stop()
		if err != nil {
			return err
		}

		printResult(fmt.Sprintf("Purchased for %s %s", market.FormatEther(cost), symbol()), res)
		return nil
	},
}

func init() {
	buyCmd.Flags().StringVar(&buyQuantity, "quantity", "", "units to buy from a quantity-based listing")
	buyCmd.Flags().BoolVarP(&buyYes, "yes", "y", false, "skip the confirmation prompt")
}
