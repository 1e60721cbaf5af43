package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir())
	assert.Equal(t, "0x4ebf", cfg.Chain.ID)
	assert.Equal(t, "Monad Testnet", cfg.Chain.DisplayName)
	assert.Equal(t, 18, cfg.Chain.Currency.Decimals)
	assert.NotEmpty(t, cfg.ReadRPC)
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	cfg.Marketplace = "0x1234567890abcdef1234567890abcdef12345678"
	cfg.DefaultAccount = "alice"
	require.NoError(t, cfg.Save())

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.Marketplace, reloaded.Marketplace)
	assert.Equal(t, "alice", reloaded.DefaultAccount)
}

func TestSaveFilePermissions(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Save())

	info, err := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadCorruptConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestAccountsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	af, err := cfg.LoadAccounts()
	require.NoError(t, err)
	assert.Empty(t, af.Accounts)

	af.Accounts = append(af.Accounts, Account{Name: "alice", Address: "0xabc", IsDefault: true})
	require.NoError(t, cfg.SaveAccounts(af))

	again, err := cfg.LoadAccounts()
	require.NoError(t, err)
	require.Len(t, again.Accounts, 1)
	assert.Equal(t, "alice", again.Accounts[0].Name)
	assert.True(t, again.Accounts[0].IsDefault)
}
