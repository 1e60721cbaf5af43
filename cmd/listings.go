package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/novanft/mktcli/internal/market"
	"github.com/novanft/mktcli/internal/ui"
)

var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Browse marketplace listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newMarketClient()
		if err != nil {
			return err
		}
		defer client.Close()

		sp := ui.NewSpinner("Fetching listings…")
		sp.Start()
		err = client.Refresh(cmd.Context())
		sp.Stop()
		if err != nil {
			return err
		}

		fmt.Print(ui.ListingsTable(client.Store().Listings(), symbol()))
		return nil
	},
}

var listingsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one listing",
	Args:  cobra.ExactArgs(1),
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

		if err := client.Refresh(cmd.Context()); err != nil {
			return err
		}

		l, ok := client.Store().Get(id)
		if !ok {
			return fmt.Errorf("no active listing with id %d", id)
		}

		pairs := [][2]string{
			{"ID", strconv.FormatUint(l.ID, 10)},
			{"Asset", fmt.Sprintf("%s #%s", l.AssetContract, l.AssetID)},
			{"Seller", l.Seller},
		}
		if l.QuantityBased() {
			pairs = append(pairs,
				[2]string{"Units left", l.Remaining.String()},
				[2]string{"Price/unit", market.FormatEther(l.Price) + " " + symbol()},
			)
		} else {
			pairs = append(pairs, [2]string{"Price", market.FormatEther(l.Price) + " " + symbol()})
		}
		fmt.Println(ui.KeyValueBlock("Listing", pairs))
		return nil
	},
}

func init() {
	listingsCmd.AddCommand(listingsGetCmd)
}
