package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/novanft/mktcli/internal/ui"
	"github.com/novanft/mktcli/internal/wallet"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and edit configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.KeyValueBlock("Configuration", [][2]string{
			{"Config dir", cfg.Dir()},
			{"Marketplace", cfg.Marketplace},
			{"Read RPC", cfg.ReadRPC},
			{"Chain", fmt.Sprintf("%s (%s)", cfg.Chain.DisplayName, cfg.Chain.ID)},
			{"Default account", cfg.DefaultAccount},
			{"Watch interval", fmt.Sprintf("%ds", cfg.WatchInterval)},
		}))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Settable keys:
  marketplace      marketplace contract address
  read-rpc         read RPC endpoint
  watch-interval   live view refresh seconds
  default-account  account name used without --account`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "marketplace":
			addr, err := wallet.NormalizeAddress(value)
			if err != nil {
				return fmt.Errorf("marketplace address: %w", err)
			}
			cfg.Marketplace = addr
		case "read-rpc":
			cfg.ReadRPC = value
		case "watch-interval":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("watch-interval must be a positive integer, got %q", value)
			}
			cfg.WatchInterval = n
		case "default-account":
			cfg.DefaultAccount = value
		default:
			return fmt.Errorf("unknown key %q, see `mktcli config set --help`", key)
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("%s set", key)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
}
