package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessContainsPrefixAndMessage(t *testing.T) {
	result := Success("listing created")
	assert.Contains(t, result, "✓")
	assert.Contains(t, result, "listing created")
}

func TestWarnContainsPrefixAndMessage(t *testing.T) {
	result := Warn("careful")
	assert.Contains(t, result, "⚠")
	assert.Contains(t, result, "careful")
}

func TestErrContainsPrefixAndMessage(t *testing.T) {
	result := Err("failed")
	assert.Contains(t, result, "✗")
	assert.Contains(t, result, "failed")
}

func TestInfoContainsPrefixAndMessage(t *testing.T) {
	result := Info("syncing")
	assert.Contains(t, result, "ℹ")
	assert.Contains(t, result, "syncing")
}

func TestHintContainsMessage(t *testing.T) {
	result := Hint("run mktcli connect first")
	assert.Contains(t, result, "run mktcli connect first")
}

func TestAddrContainsAddress(t *testing.T) {
	result := Addr("0xABCDEF")
	assert.Contains(t, result, "0xABCDEF")
}

func TestValContainsValue(t *testing.T) {
	result := Val("1.5 MON")
	assert.Contains(t, result, "1.5 MON")
}

func TestTruncateAddrShortAddress(t *testing.T) {
	assert.Equal(t, "0x1234", TruncateAddr("0x1234"))
}

func TestTruncateAddrLongAddress(t *testing.T) {
	got := TruncateAddr("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	assert.Equal(t, "0xf39F…2266", got)
}

func TestTruncateAddrEmptyString(t *testing.T) {
	assert.Equal(t, "", TruncateAddr(""))
}

func TestBannerContainsBranding(t *testing.T) {
	b := Banner()
	assert.Contains(t, b, "NFT Marketplace CLI")
	assert.NotEmpty(t, b)
}

func TestPadRShort(t *testing.T) {
	assert.Equal(t, "ab   ", padR("ab", 5))
}

func TestPadRLonger(t *testing.T) {
	assert.Equal(t, "abcdef", padR("abcdef", 3))
}

func TestPadRStyledContent(t *testing.T) {
	styled := StyleAddress.Render("abc")
	padded := padR(styled, 6)
	assert.Contains(t, padded, "abc")
	assert.Contains(t, padded, "   ")
}
