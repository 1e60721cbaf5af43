package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	defaultReadRPC  = "https://rpc-mu.di-monad.org"
	defaultChainID  = "0x4ebf"
	defaultInterval = 10

	configFile   = "config.json"
	accountsFile = "accounts.json"
)

// Load reads config from dir (or creates defaults). dir defaults to ~/.mktcli.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".mktcli")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// AccountsPath returns the path of accounts.json.
func (c *Config) AccountsPath() string {
	return filepath.Join(c.configDir, accountsFile)
}

// LoadAccounts reads accounts.json.
func (c *Config) LoadAccounts() (*AccountsFile, error) {
	return loadJSON[AccountsFile](c.AccountsPath())
}

// SaveAccounts writes accounts.json.
func (c *Config) SaveAccounts(af *AccountsFile) error {
	return saveJSON(c.AccountsPath(), af)
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		ReadRPC: defaultReadRPC,
		Chain: ChainConfig{
			ID:          defaultChainID,
			DisplayName: "Monad Testnet",
			RPCURLs:     []string{defaultReadRPC},
			Currency:    Currency{Name: "MON", Symbol: "MON", Decimals: 18},
		},
		WatchInterval: defaultInterval,
		configDir:     dir,
	}
}

func loadJSON[T any](path string) (*T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &zero, nil
	}
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
