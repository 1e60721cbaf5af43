// check-listings: dumps the marketplace's current listing set and, for a set
// of seller addresses, their withdrawable proceeds. Handy for eyeballing a
// deployment without going through the CLI.
//
// Run from the module root:
//
//	go run ./scripts/check-listings <rpc-url> <marketplace-address> [seller...]
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/novanft/mktcli/internal/market"
)

const rpcTimeout = 12 * time.Second

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: check-listings <rpc-url> <marketplace-address> [seller...]")
		os.Exit(2)
	}
	rpcURL, marketplace := os.Args[1], os.Args[2]
	sellers := os.Args[3:]

	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	reader := market.NewReader(rpcURL, marketplace)

	listings, err := reader.Listings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listings: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSELLER\tASSET\tUNITS\tPRICE\tACTIVE")
	fmt.Fprintln(w, strings.Repeat("-", 4)+"\t"+
		strings.Repeat("-", 14)+"\t"+
		strings.Repeat("-", 20)+"\t"+
		strings.Repeat("-", 6)+"\t"+
		strings.Repeat("-", 14)+"\t"+
		strings.Repeat("-", 6))

	for _, l := range listings {
		units := "1"
		price := market.FormatEther(l.Price)
		if l.QuantityBased() {
			units = l.Remaining.String()
			price += "/unit"
		}
		fmt.Fprintf(w, "%d\t%s\t%s #%s\t%s\t%s\t%v\n",
			l.ID, shortAddr(l.Seller), shortAddr(l.AssetContract), l.AssetID, units, price, l.Active)
	}
	w.Flush() //nolint:errcheck

	if len(sellers) == 0 {
		return
	}

	// Proceeds queries run in parallel; order is preserved for output.
	type balance struct {
		seller string
		amount string
		err    error
	}
	balances := make([]balance, len(sellers))
	var wg sync.WaitGroup
	for i, seller := range sellers {
		wg.Add(1)
		go func(idx int, addr string) {
			defer wg.Done()
			amount, err := reader.Proceeds(ctx, addr)
			b := balance{seller: addr, err: err}
			if err == nil {
				b.amount = market.FormatEther(amount)
			}
			balances[idx] = b
		}(i, seller)
	}
	wg.Wait()

	fmt.Println()
	pw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(pw, "SELLER\tPROCEEDS\tNOTE")
	for _, b := range balances {
		note := ""
		amount := b.amount
		if b.err != nil {
			amount = "—"
			note = b.err.Error()
		}
		fmt.Fprintf(pw, "%s\t%s\t%s\n", shortAddr(b.seller), amount, note)
	}
	pw.Flush() //nolint:errcheck
}

func shortAddr(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
