package market

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Listing is a seller's offer as tracked by the marketplace contract. The
// client never mutates one; snapshots are discarded and replaced wholesale on
// refresh. Remaining == nil marks a single-unit listing with a fixed Price;
// otherwise Price is per unit and Remaining counts the units left.
type Listing struct {
	ID            uint64
	Seller        string
	AssetContract string
	AssetID       *big.Int
	Remaining     *big.Int
	Price         *big.Int
	Active        bool
}

// QuantityBased reports whether buyers choose a unit count.
func (l Listing) QuantityBased() bool { return l.Remaining != nil }

// listingRecord is the on-chain tuple shape of one getListings() element.
// Field names must match the ABI component names for ConvertType.
type listingRecord struct {
	Id        *big.Int
	Seller    common.Address
	Token     common.Address
	TokenId   *big.Int
	Remaining *big.Int
	Price     *big.Int
	Active    bool
}

// toListing converts a wire record into the client model. remaining == 0 on
// the wire means single-unit; sold-out quantity listings are deactivated by
// the contract before they could be confused with one.
func (r listingRecord) toListing() Listing {
	l := Listing{
		ID:            r.Id.Uint64(),
		Seller:        r.Seller.Hex(),
		AssetContract: r.Token.Hex(),
		AssetID:       r.TokenId,
		Price:         r.Price,
		Active:        r.Active,
	}
	if r.Remaining != nil && r.Remaining.Sign() > 0 {
		l.Remaining = r.Remaining
	}
	return l
}
