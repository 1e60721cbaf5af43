package market

import "errors"

// Errors.
var (
	// ErrNotConnected means a write was attempted with no authenticated
	// handle; nothing was submitted.
	ErrNotConnected = errors.New("no connected account")
	// ErrValidation means local form input was missing or invalid; the
	// chain was never contacted.
	ErrValidation = errors.New("invalid listing input")
	// ErrInvalidQuantity means a purchase quantity was zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrSync means a read-path query failed; the previous snapshot is
	// retained untouched.
	ErrSync = errors.New("listing sync failed")
	// ErrContractCall means the remote call reverted or failed after
	// submission. No partial local effects are assumed.
	ErrContractCall = errors.New("contract call failed")
	// ErrConfirmationTimeout means the submitted transaction was not
	// confirmed within the bounded wait. Distinct from a revert: the
	// transaction may still land later.
	ErrConfirmationTimeout = errors.New("confirmation wait timed out")
	// ErrListingBusy means another purchase against the same listing is
	// still in flight from this client.
	ErrListingBusy = errors.New("listing has a purchase in flight")
)
