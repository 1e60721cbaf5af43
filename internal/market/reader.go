package market

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/novanft/mktcli/internal/chain"
)

// Reader queries the marketplace through a fixed read-only endpoint. It is
// independent of any connected account and always available.
type Reader struct {
	client      *chain.Client
	marketplace string
}

// NewReader creates a Reader over rpcURL for the marketplace at address.
func NewReader(rpcURL, marketplace string) *Reader {
	return &Reader{
		client:      chain.NewClient(rpcURL),
		marketplace: marketplace,
	}
}

// Listings fetches the full listing collection, inactive entries included;
// filtering is the store's job.
func (r *Reader) Listings(ctx context.Context) ([]Listing, error) {
	calldata, err := mktABI.Pack(methodGetListings)
	if err != nil {
		return nil, fmt.Errorf("packing getListings: %w", err)
	}

	raw, err := r.client.CallContract(ctx, r.marketplace, "0x"+hex.EncodeToString(calldata))
	if err != nil {
		return nil, fmt.Errorf("getListings call: %w", err)
	}

	data, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decoding getListings result: %w", err)
	}

	out, err := mktABI.Unpack(methodGetListings, data)
	if err != nil {
		return nil, fmt.Errorf("unpacking getListings: %w", err)
	}

	records := *abi.ConvertType(out[0], new([]listingRecord)).(*[]listingRecord)
	listings := make([]Listing, 0, len(records))
	for _, rec := range records {
		listings = append(listings, rec.toListing())
	}
	return listings, nil
}

// Proceeds returns the withdrawable sale balance for account, in the smallest
// currency unit.
func (r *Reader) Proceeds(ctx context.Context, account string) (*big.Int, error) {
	calldata, err := mktABI.Pack(methodProceeds, common.HexToAddress(account))
	if err != nil {
		return nil, fmt.Errorf("packing proceeds: %w", err)
	}

	raw, err := r.client.CallContract(ctx, r.marketplace, "0x"+hex.EncodeToString(calldata))
	if err != nil {
		return nil, fmt.Errorf("proceeds call: %w", err)
	}

	data, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decoding proceeds result: %w", err)
	}

	out, err := mktABI.Unpack(methodProceeds, data)
	if err != nil {
		return nil, fmt.Errorf("unpacking proceeds: %w", err)
	}

	balance := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return balance, nil
}
