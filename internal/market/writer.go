package market

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/novanft/mktcli/internal/chain"
	"github.com/novanft/mktcli/internal/config"
)

// TxSigner signs transactions for one account. wallet.Signer satisfies it;
// tests substitute their own.
type TxSigner interface {
	SignTx(tx *types.Transaction, chainID *big.Int) ([]byte, error)
	Address() string
}

// MarketWriter is the authenticated contract surface the coordinator
// drives. *Writer is the production implementation.
type MarketWriter interface {
	Account() string
	ListToken(ctx context.Context, token string, tokenID, price *big.Int) (string, error)
	List1155(ctx context.Context, token string, tokenID, amount, unitPrice *big.Int) (string, error)
	Buy(ctx context.Context, listingID uint64, qty, totalCost *big.Int) (string, error)
	WithdrawProceeds(ctx context.Context) (string, error)
	WaitConfirmed(ctx context.Context, hash string) (*chain.Receipt, error)
}

// Writer submits state-changing marketplace calls through the signer it was
// bound with. A Writer exists only while a session does; it is derived fresh
// on every bind and never reused across session changes.
type Writer struct {
	client         *chain.Client
	marketplace    string
	chainID        *big.Int
	signer         TxSigner
	confirmTimeout time.Duration
}

// NewWriter creates a Writer for the marketplace at address, signing with
// signer on the given chain.
func NewWriter(rpcURL, marketplace string, chainID *big.Int, signer TxSigner) *Writer {
	return &Writer{
		client:         chain.NewClient(rpcURL),
		marketplace:    marketplace,
		chainID:        chainID,
		signer:         signer,
		confirmTimeout: config.TxConfirmTimeout,
	}
}

// Account returns the signing account's address.
func (w *Writer) Account() string { return w.signer.Address() }

// ListToken creates a single-unit listing. No payment is attached.
func (w *Writer) ListToken(ctx context.Context, token string, tokenID, price *big.Int) (string, error) {
	return w.send(ctx, methodListToken, nil, config.GasLimitListing,
		common.HexToAddress(token), tokenID, price)
}

// List1155 creates a quantity-based listing. No payment is attached.
func (w *Writer) List1155(ctx context.Context, token string, tokenID, amount, unitPrice *big.Int) (string, error) {
	return w.send(ctx, methodList1155, nil, config.GasLimitListing,
		common.HexToAddress(token), tokenID, amount, unitPrice)
}

// Buy purchases from a listing, attaching totalCost as the payment amount.
// A nil qty buys a single-unit listing.
func (w *Writer) Buy(ctx context.Context, listingID uint64, qty, totalCost *big.Int) (string, error) {
	id := new(big.Int).SetUint64(listingID)
	if qty == nil {
		return w.send(ctx, methodBuySingle, totalCost, config.GasLimitBuy, id)
	}
	return w.send(ctx, methodBuyQty, totalCost, config.GasLimitBuy, id, qty)
}

// WithdrawProceeds withdraws the caller's full proceeds balance.
func (w *Writer) WithdrawProceeds(ctx context.Context) (string, error) {
	return w.send(ctx, methodWithdraw, nil, config.GasLimitWithdraw)
}

// WaitConfirmed blocks until the transaction settles. Reverts and expired
// waits come back as chain.ErrReverted and chain.ErrReceiptTimeout; the
// coordinator translates both into its own taxonomy.
func (w *Writer) WaitConfirmed(ctx context.Context, hash string) (*chain.Receipt, error) {
	return w.client.WaitForReceipt(ctx, hash, w.confirmTimeout)
}

// send packs, signs, and broadcasts one contract call.
func (w *Writer) send(ctx context.Context, method string, value *big.Int, gasFallback uint64, args ...interface{}) (string, error) {
	calldata, err := mktABI.Pack(method, args...)
	if err != nil {
		return "", fmt.Errorf("packing %s: %w", method, err)
	}
	calldataHex := "0x" + hex.EncodeToString(calldata)

	from := w.signer.Address()

	gas, err := w.client.EstimateGas(ctx, from, w.marketplace, calldataHex, value)
	if err != nil {
		gas = gasFallback
	}

	gasPrice, err := w.client.GasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("getting gas price: %w", err)
	}

	nonce, err := w.client.PendingNonce(ctx, from)
	if err != nil {
		return "", fmt.Errorf("getting nonce: %w", err)
	}

	toAddr := common.HexToAddress(w.marketplace)
	if value == nil {
		value = big.NewInt(0)
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   w.chainID,
		Nonce:     nonce,
		GasTipCap: gasPrice,
		GasFeeCap: new(big.Int).Mul(gasPrice, big.NewInt(2)),
		Gas:       gas,
		To:        &toAddr,
		Value:     value,
		Data:      calldata,
	})

	raw, err := w.signer.SignTx(tx, w.chainID)
	if err != nil {
		return "", fmt.Errorf("signing transaction: %w", err)
	}

	hash, err := w.client.SendRawTransaction(ctx, "0x"+hex.EncodeToString(raw))
	if err != nil {
		return "", fmt.Errorf("broadcasting transaction: %w", err)
	}

	return hash, nil
}
