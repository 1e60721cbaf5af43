package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/novanft/mktcli/internal/config"
	"github.com/novanft/mktcli/internal/market"
	"github.com/novanft/mktcli/internal/wallet"
)

// newAccountManager builds the account manager over the config dir's
// accounts file and the OS keychain.
func newAccountManager() *wallet.Manager {
	store := wallet.NewJSONStore(cfg.AccountsPath())
	return wallet.NewManager(wallet.WithStore(store))
}

// chainParams maps the configured chain onto the wallet registration shape.
func chainParams(c config.ChainConfig) wallet.ChainParams {
	return wallet.ChainParams{
		ChainID:          c.ID,
		DisplayName:      c.DisplayName,
		RPCURLs:          c.RPCURLs,
		CurrencyName:     c.Currency.Name,
		CurrencySymbol:   c.Currency.Symbol,
		CurrencyDecimals: c.Currency.Decimals,
	}
}

// chainID parses the configured hex chain id.
func chainID() (*big.Int, error) {
	id, ok := new(big.Int).SetString(strings.TrimPrefix(cfg.Chain.ID, "0x"), 16)
	if !ok {
		return nil, fmt.Errorf("invalid chain id in config: %q", cfg.Chain.ID)
	}
	return id, nil
}

// requireMarketplace fails fast when no contract address is configured.
func requireMarketplace() error {
	if cfg.Marketplace == "" {
		return fmt.Errorf("no marketplace contract configured\n  Set one with: mktcli config set marketplace <address>")
	}
	return nil
}

// newMarketClient assembles the full marketplace client: local wallet
// provider, network guard for the configured chain, and contract binder.
func newMarketClient() (*market.Client, error) {
	if err := requireMarketplace(); err != nil {
		return nil, err
	}

	id, err := chainID()
	if err != nil {
		return nil, err
	}

	mgr := newAccountManager()
	if cfg.DefaultAccount != "" {
		if err := mgr.SetDefault(cfg.DefaultAccount); err != nil {
			return nil, fmt.Errorf("account %q: %w", cfg.DefaultAccount, err)
		}
	}

	params := chainParams(cfg.Chain)
	provider := wallet.NewLocalProvider(mgr, wallet.WithKnownChain(params))
	sessions := wallet.NewSessionManager(provider, wallet.NewNetworkGuard(params))

	binder := market.NewBinder(cfg.Marketplace, cfg.ReadRPC, id, func(account string) (market.TxSigner, error) {
		for _, a := range mgr.List() {
			if strings.EqualFold(a.Address, account) {
				return wallet.NewSigner(a, mgr.Keystore()), nil
			}
		}
		return nil, wallet.ErrAccountNotFound
	})

	return market.NewClient(sessions, binder), nil
}

// symbol returns the configured currency ticker.
func symbol() string {
	if cfg.Chain.Currency.Symbol != "" {
		return cfg.Chain.Currency.Symbol
	}
	return "ETH"
}
