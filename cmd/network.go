package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/novanft/mktcli/internal/rpc"
	"github.com/novanft/mktcli/internal/ui"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Inspect the marketplace network",
}

var networkInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the configured network",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.KeyValueBlock("Network", [][2]string{
			{"Name", cfg.Chain.DisplayName},
			{"Chain ID", cfg.Chain.ID},
			{"Currency", fmt.Sprintf("%s (%d decimals)", cfg.Chain.Currency.Symbol, cfg.Chain.Currency.Decimals)},
			{"Read RPC", cfg.ReadRPC},
			{"Marketplace", cfg.Marketplace},
		}))
		return nil
	},
}

var networkPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Health-check the configured RPC endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		urls := cfg.Chain.RPCURLs
		if cfg.ReadRPC != "" {
			urls = appendUnique(urls, cfg.ReadRPC)
		}
		if len(urls) == 0 {
			return fmt.Errorf("no RPC endpoints configured")
		}

		sp := ui.NewSpinner("Pinging endpoints…")
		sp.Start()
		endpoints := rpc.CheckAll(cmd.Context(), urls)
		sp.Stop()

		t := ui.NewTable([]ui.Column{
			{Title: "ENDPOINT", Width: 44},
			{Title: "STATUS", Width: 10},
			{Title: "LATENCY", Width: 10},
			{Title: "BLOCK", Width: 12},
		})
		for _, ep := range endpoints {
			status := "healthy"
			block := strconv.FormatUint(ep.BlockNumber, 10)
			if !ep.Healthy {
				status = "down"
				block = "—"
			}
			t.AddRow(ui.Row{ep.URL, status, ep.Latency.Round(1e6).String(), block})
		}
		fmt.Print(t.Render())

		best, err := rpc.Best(cmd.Context(), urls)
		if err != nil {
			fmt.Println(ui.Err("No healthy endpoint available"))
			return nil
		}
		fmt.Println(ui.Info("Fastest healthy endpoint: " + best))
		return nil
	},
}

func appendUnique(urls []string, url string) []string {
	for _, u := range urls {
		if u == url {
			return urls
		}
	}
	return append(urls, url)
}

func init() {
	networkCmd.AddCommand(networkInfoCmd, networkPingCmd)
}
