package ui

import (
	"fmt"
	"math/big"

	"github.com/novanft/mktcli/internal/market"
)

// ListingColumns is the fixed column layout for listing tables.
var ListingColumns = []Column{
	{Title: "ID", Width: 5},
	{Title: "ASSET", Width: 20},
	{Title: "SELLER", Width: 14},
	{Title: "UNITS", Width: 7},
	{Title: "PRICE", Width: 18},
}

// ListingRow formats one listing as a table row. symbol is the native
// currency ticker.
func ListingRow(l market.Listing, symbol string) Row {
	units := "—"
	priceLabel := market.FormatEther(l.Price) + " " + symbol
	if l.QuantityBased() {
		units = l.Remaining.String()
		priceLabel += "/unit"
	}
	return Row{
		fmt.Sprintf("%d", l.ID),
		fmt.Sprintf("%s #%s", TruncateAddr(l.AssetContract), l.AssetID),
		TruncateAddr(l.Seller),
		units,
		priceLabel,
	}
}

// ListingsTable renders the listing set as a fixed-width table. An empty set
// renders a placeholder line instead.
func ListingsTable(listings []market.Listing, symbol string) string {
	if len(listings) == 0 {
		return StyleMeta.Render("  No active listings.") + "\n"
	}
	t := NewTable(ListingColumns)
	for _, l := range listings {
		t.AddRow(ListingRow(l, symbol))
	}
	return t.Render()
}

// ProceedsBlock renders an account's withdrawable balance.
func ProceedsBlock(account string, balance *big.Int, symbol string) string {
	amount := "0 " + symbol
	if balance != nil {
		amount = market.FormatEther(balance) + " " + symbol
	}
	return KeyValueBlock("Proceeds", [][2]string{
		{"Account", TruncateAddr(account)},
		{"Withdrawable", amount},
	})
}
