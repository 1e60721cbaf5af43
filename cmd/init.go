package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novanft/mktcli/internal/ui"
	"github.com/novanft/mktcli/internal/wallet"
)

var (
	initMarketplace string
	initRPC         string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up mktcli",
	Long: `Write the initial configuration: the marketplace contract address and
the read RPC endpoint. Defaults target the Monad Testnet deployment.

Examples:
  mktcli init --marketplace 0xYourMarketplace
  mktcli init --marketplace 0xYourMarketplace --read-rpc https://rpc.example.org`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.Banner())

		if initMarketplace != "" {
			addr, err := wallet.NormalizeAddress(initMarketplace)
			if err != nil {
				return fmt.Errorf("marketplace address: %w", err)
			}
			cfg.Marketplace = addr
		}
		if initRPC != "" {
			cfg.ReadRPC = initRPC
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Println(ui.Success("Configuration written to " + cfg.Dir()))
		if cfg.Marketplace == "" {
			fmt.Println(ui.Warn("No marketplace contract set yet."))
			fmt.Println(ui.Hint("Set one with: mktcli config set marketplace <address>"))
		}
		fmt.Println(ui.Hint("Add an account with: mktcli account new <name>"))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initMarketplace, "marketplace", "", "marketplace contract address")
	initCmd.Flags().StringVar(&initRPC, "read-rpc", "", "read RPC endpoint")
}
