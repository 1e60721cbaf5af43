package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/novanft/mktcli/internal/config"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/novanft/mktcli/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir      string
	cfg         *config.Config
	accountFlag string
	rpcFlag     string
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "mktcli",
	Short: "NFT marketplace CLI",
	Long: `mktcli — terminal client for an on-chain NFT marketplace.

  Browse live listings, sell single tokens or quantity batches, buy
  with exact big-integer pricing, and withdraw your sale proceeds.

The marketplace queries run against a fixed read endpoint, so browsing
works without any connected account. Selling, buying, and withdrawing
need a connected account: run ` + "`mktcli connect`" + ` first.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if rpcFlag != "" {
			cfg.ReadRPC = rpcFlag
		}
		if accountFlag != "" {
			cfg.DefaultAccount = accountFlag
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// MKTCLI_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("MKTCLI_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.mktcli)")
	rootCmd.PersistentFlags().StringVar(&accountFlag, "account", "", "account name to act as (default: configured account)")
	rootCmd.PersistentFlags().StringVar(&rpcFlag, "rpc", "", "read RPC endpoint override")

	rootCmd.AddCommand(
		initCmd,
		accountCmd,
		networkCmd,
		connectCmd,
		listingsCmd,
		sellCmd,
		buyCmd,
		withdrawCmd,
		proceedsCmd,
		watchCmd,
		configCmd,
	)
}
