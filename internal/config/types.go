package config

// Config holds all mktcli configuration.
type Config struct {
	// Marketplace is the deployed marketplace contract address.
	Marketplace string `json:"marketplace"`
	// ReadRPC is the fixed JSON-RPC endpoint used for all queries,
	// independent of any connected account.
	ReadRPC string `json:"read_rpc"`
	// Chain is the network the marketplace is deployed on, including the
	// metadata needed to register it with a wallet that does not know it.
	Chain ChainConfig `json:"chain"`
	// DefaultAccount is the account name used when --account is not given.
	DefaultAccount string `json:"default_account"`
	// WatchInterval is the live-view refresh interval in seconds.
	WatchInterval int `json:"watch_interval"`

	// internal: config dir path used for Save()
	configDir string
}

// ChainConfig is the marketplace's deployment network plus the registration
// metadata a wallet needs when the chain is not yet known to it.
type ChainConfig struct {
	ID          string   `json:"id"` // 0x-prefixed hex chain id
	DisplayName string   `json:"display_name"`
	RPCURLs     []string `json:"rpc_urls"`
	Currency    Currency `json:"currency"`
}

// Currency is a chain's native currency metadata.
type Currency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Account represents a stored account entry.
type Account struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	KeyRef    string `json:"key_ref,omitempty"` // keychain reference
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at"`
}

// AccountsFile is the structure of accounts.json.
type AccountsFile struct {
	Accounts []Account `json:"accounts"`
}
