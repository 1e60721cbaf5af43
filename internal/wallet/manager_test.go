package wallet_test

import (
	"strings"
	"testing"

	"github.com/novanft/mktcli/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known Hardhat/Anvil test account #0 — never fund on mainnet.
const (
	testPrivKeyHex = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddr       = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func testManager() *wallet.Manager {
	return wallet.NewManager(wallet.WithKeystore(wallet.NewInMemoryKeystore()))
}

func TestImportAccount(t *testing.T) {
	mgr := testManager()

	a, err := mgr.Import("signer", testPrivKeyHex)
	require.NoError(t, err)
	assert.Equal(t, "signer", a.Name)
	assert.Equal(t, testAddr, a.Address) // known address for test key
	assert.NotEmpty(t, a.KeyRef)
	assert.NotEmpty(t, a.CreatedAt)
}

func TestImportDuplicateErrors(t *testing.T) {
	mgr := testManager()
	_, err := mgr.Import("dup", testPrivKeyHex)
	require.NoError(t, err)

	_, err = mgr.Import("dup", testPrivKeyHex)
	assert.ErrorIs(t, err, wallet.ErrAccountExists)
}

func TestImportInvalidPrivateKey(t *testing.T) {
	mgr := testManager()
	_, err := mgr.Import("bad", "not-a-valid-key")
	assert.ErrorIs(t, err, wallet.ErrInvalidKey)
}

func TestFirstImportIsDefault(t *testing.T) {
	mgr := testManager()
	a, err := mgr.Import("first", testPrivKeyHex)
	require.NoError(t, err)
	assert.True(t, a.IsDefault)
}

func TestGetNonExistentAccount(t *testing.T) {
	mgr := testManager()
	_, err := mgr.Get("ghost")
	assert.ErrorIs(t, err, wallet.ErrAccountNotFound)
}

func TestRemoveAccount(t *testing.T) {
	mgr := testManager()
	_, err := mgr.Import("victim", testPrivKeyHex)
	require.NoError(t, err)

	require.NoError(t, mgr.Remove("victim"))

	_, err = mgr.Get("victim")
	assert.ErrorIs(t, err, wallet.ErrAccountNotFound)
}

func TestRemoveNonExistentAccount(t *testing.T) {
	mgr := testManager()
	err := mgr.Remove("ghost")
	assert.ErrorIs(t, err, wallet.ErrAccountNotFound)
}

func TestSetDefault(t *testing.T) {
	mgr := testManager()
	_, _, err := mgr.Generate("a1")
	require.NoError(t, err)
	_, _, err = mgr.Generate("a2")
	require.NoError(t, err)

	require.NoError(t, mgr.SetDefault("a2"))

	def := mgr.Default()
	require.NotNil(t, def)
	assert.Equal(t, "a2", def.Name)
}

func TestDefaultWithSingleAccount(t *testing.T) {
	mgr := testManager()
	_, err := mgr.Import("only", testPrivKeyHex)
	require.NoError(t, err)

	def := mgr.Default()
	require.NotNil(t, def)
	assert.Equal(t, "only", def.Name)
}

func TestGenerateAccount(t *testing.T) {
	mgr := testManager()

	a, hexKey, err := mgr.Generate("fresh")
	require.NoError(t, err)

	assert.Equal(t, "fresh", a.Name)
	assert.True(t, strings.HasPrefix(a.Address, "0x"))
	assert.Len(t, a.Address, 42)

	// Key must be "0x" + 64 hex chars.
	assert.True(t, strings.HasPrefix(hexKey, "0x"))
	assert.Len(t, hexKey, 66)
}

func TestGenerateUniqueKeys(t *testing.T) {
	mgr := testManager()
	_, key1, err := mgr.Generate("g1")
	require.NoError(t, err)
	_, key2, err := mgr.Generate("g2")
	require.NoError(t, err)
	assert.NotEqual(t, key1, key2, "two generated keys must differ")
}

func TestExportKeyRoundTrip(t *testing.T) {
	mgr := testManager()
	_, err := mgr.Import("exporter", testPrivKeyHex)
	require.NoError(t, err)

	got, err := mgr.ExportKey("exporter")
	require.NoError(t, err)
	assert.Equal(t, testPrivKeyHex, got)
}

func TestExportKeyNotFound(t *testing.T) {
	mgr := testManager()
	_, err := mgr.ExportKey("ghost")
	assert.ErrorIs(t, err, wallet.ErrAccountNotFound)
}
