package ui

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novanft/mktcli/internal/market"
)

func quantityListing() market.Listing {
	return market.Listing{
		ID:            3,
		Seller:        "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		AssetContract: "0x1111111111111111111111111111111111111111",
		AssetID:       big.NewInt(42),
		Remaining:     big.NewInt(10),
		Price:         mustWei("0.5"),
		Active:        true,
	}
}

func mustWei(s string) *big.Int {
	wei, err := market.ParseEther(s)
	if err != nil {
		panic(err)
	}
	return wei
}

func TestListingRowQuantityBased(t *testing.T) {
	row := ListingRow(quantityListing(), "MON")
	require.Len(t, row, len(ListingColumns))
	assert.Equal(t, "3", row[0])
	assert.Contains(t, row[1], "#42")
	assert.Equal(t, "10", row[3])
	assert.Equal(t, "0.5 MON/unit", row[4])
}

func TestListingRowSingleUnit(t *testing.T) {
	l := quantityListing()
	l.Remaining = nil
	l.Price = mustWei("1.5")

	row := ListingRow(l, "MON")
	assert.Equal(t, "—", row[3])
	assert.Equal(t, "1.5 MON", row[4])
}

func TestListingsTableEmpty(t *testing.T) {
	out := ListingsTable(nil, "MON")
	assert.Contains(t, out, "No active listings")
}

func TestListingsTableRendersRows(t *testing.T) {
	out := ListingsTable([]market.Listing{quantityListing()}, "MON")
	assert.Contains(t, out, "0.5 MON/unit")
	assert.Contains(t, out, "SELLER")
}

func TestProceedsBlock(t *testing.T) {
	out := ProceedsBlock("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", mustWei("2.5"), "MON")
	assert.Contains(t, out, "2.5 MON")
	assert.Contains(t, out, "0xf39F…2266")
}

func TestProceedsBlockNilBalance(t *testing.T) {
	out := ProceedsBlock("0x1111111111111111111111111111111111111111", nil, "MON")
	assert.Contains(t, out, "0 MON")
}
