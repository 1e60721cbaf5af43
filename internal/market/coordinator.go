package market

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/novanft/mktcli/internal/chain"
)

// TxKind identifies a write action.
type TxKind string

const (
	KindCreateListing TxKind = "create-listing"
	KindBuy           TxKind = "buy"
	KindWithdraw      TxKind = "withdraw"
)

// TxStatus is a phase of a submitted action's lifecycle.
type TxStatus int

const (
	StatusIdle TxStatus = iota
	StatusSubmitting
	StatusAwaitingConfirmation
)

func (s TxStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusAwaitingConfirmation:
		return "awaiting confirmation"
	default:
		return fmt.Sprintf("txstatus(%d)", int(s))
	}
}

// ListingForm is the raw input for a new listing, exactly as the user typed
// it. An empty Quantity means a single-unit listing.
type ListingForm struct {
	AssetContract string
	AssetID       string
	Quantity      string
	Price         string // whole currency units, e.g. "1.5"
}

// Result reports a settled action. RefreshErr carries a post-confirmation
// sync failure; the transaction itself still succeeded.
type Result struct {
	Kind       TxKind
	Hash       string
	Receipt    *chain.Receipt
	RefreshErr error
}

// Coordinator runs the write path: validate locally, submit through the
// current authenticated handle, wait for settlement, and refresh the store
// only once confirmation is observed. Once an action is submitting it
// cannot be cancelled; the signing boundary is irrevocable.
type Coordinator struct {
	bind  func() Handles // current derivation, consulted per action
	store *Store

	mu      sync.Mutex
	status  TxStatus
	buying  map[uint64]bool // listings with an in-flight purchase
}

// NewCoordinator creates a Coordinator. bind must return the current handle
// derivation; it is called at dispatch time so a session change between
// actions is always picked up.
func NewCoordinator(bind func() Handles, store *Store) *Coordinator {
	return &Coordinator{
		bind:   bind,
		store:  store,
		buying: make(map[uint64]bool),
	}
}

// Status returns the coordinator's current phase.
func (c *Coordinator) Status() TxStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// CreateListing validates the form locally and, only if it is complete and
// well-formed, submits listToken or list1155. Nothing touches the network on
// a validation failure.
func (c *Coordinator) CreateListing(ctx context.Context, form ListingForm) (*Result, error) {
	token, tokenID, qty, price, err := validateListingForm(form)
	if err != nil {
		return nil, err
	}

	w := c.bind().Writer
	if w == nil {
		return nil, ErrNotConnected
	}

	return c.run(ctx, KindCreateListing, w, func() (string, error) {
		if qty == nil {
			return w.ListToken(ctx, token, tokenID, price)
		}
		return w.List1155(ctx, token, tokenID, qty, price)
	})
}

// Buy purchases from a listing. For a quantity-based listing the payment is
// ComputeCost(unit price, qty), exactly; for single-unit it is the fixed
// price and qty is ignored. While a purchase is in flight the listing is
// locked against further buys from this client.
func (c *Coordinator) Buy(ctx context.Context, l Listing, qty *big.Int) (*Result, error) {
	var cost *big.Int
	var err error
	if l.QuantityBased() {
		cost, err = ComputeCost(l.Price, qty)
		if err != nil {
			return nil, err
		}
		if l.Remaining != nil && qty.Cmp(l.Remaining) > 0 {
			return nil, fmt.Errorf("%w: only %s units remaining", ErrValidation, l.Remaining)
		}
	} else {
		cost = l.Price
		qty = nil
	}

	w := c.bind().Writer
	if w == nil {
		return nil, ErrNotConnected
	}

	if !c.lockListing(l.ID) {
		return nil, fmt.Errorf("%w: listing %d", ErrListingBusy, l.ID)
	}
	defer c.unlockListing(l.ID)

	return c.run(ctx, KindBuy, w, func() (string, error) {
		return w.Buy(ctx, l.ID, qty, cost)
	})
}

// Withdraw withdraws the caller's full proceeds balance.
func (c *Coordinator) Withdraw(ctx context.Context) (*Result, error) {
	w := c.bind().Writer
	if w == nil {
		return nil, ErrNotConnected
	}
	return c.run(ctx, KindWithdraw, w, func() (string, error) {
		return w.WithdrawProceeds(ctx)
	})
}

// run drives one action through Submitting → AwaitingConfirmation and
// settles it. The store refresh happens strictly after a confirmation is
// observed, and never on failure — remote state did not change.
func (c *Coordinator) run(ctx context.Context, kind TxKind, w MarketWriter, submit func() (string, error)) (*Result, error) {
	c.setStatus(StatusSubmitting)
	defer c.setStatus(StatusIdle)

	hash, err := submit()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContractCall, err)
	}

	c.setStatus(StatusAwaitingConfirmation)
	receipt, err := w.WaitConfirmed(ctx, hash)
	if err != nil {
		if errors.Is(err, chain.ErrReceiptTimeout) {
			return nil, fmt.Errorf("%w: %s", ErrConfirmationTimeout, hash)
		}
		return nil, fmt.Errorf("%w: %v", ErrContractCall, err)
	}

	res := &Result{Kind: kind, Hash: hash, Receipt: receipt}
	res.RefreshErr = c.store.Refresh(ctx)
	return res, nil
}

func (c *Coordinator) setStatus(s TxStatus) {
	c.mu.Lock()
	c.status = s
	c.mu.Unlock()
}

func (c *Coordinator) lockListing(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buying[id] {
		return false
	}
	c.buying[id] = true
	return true
}

func (c *Coordinator) unlockListing(id uint64) {
	c.mu.Lock()
	delete(c.buying, id)
	c.mu.Unlock()
}

// validateListingForm checks the raw form before anything touches the
// network: fields present, addresses plausible, numbers numeric and positive.
func validateListingForm(form ListingForm) (token string, tokenID, qty, price *big.Int, err error) {
	if form.AssetContract == "" || form.AssetID == "" || form.Price == "" {
		return "", nil, nil, nil, fmt.Errorf("%w: asset contract, token id, and price are required", ErrValidation)
	}
	if !common.IsHexAddress(form.AssetContract) {
		return "", nil, nil, nil, fmt.Errorf("%w: %q is not an address", ErrValidation, form.AssetContract)
	}

	tokenID, ok := new(big.Int).SetString(form.AssetID, 10)
	if !ok || tokenID.Sign() < 0 {
		return "", nil, nil, nil, fmt.Errorf("%w: token id %q is not a non-negative integer", ErrValidation, form.AssetID)
	}

	if form.Quantity != "" {
		qty, ok = new(big.Int).SetString(form.Quantity, 10)
		if !ok || qty.Sign() <= 0 {
			return "", nil, nil, nil, fmt.Errorf("%w: quantity %q is not a positive integer", ErrValidation, form.Quantity)
		}
	}

	price, perr := ParseEther(form.Price)
	if perr != nil || price.Sign() <= 0 {
		return "", nil, nil, nil, fmt.Errorf("%w: price %q is not a positive amount", ErrValidation, form.Price)
	}

	return form.AssetContract, tokenID, qty, price, nil
}
