package integration_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novanft/mktcli/internal/market"
	"github.com/novanft/mktcli/internal/wallet"
)

const (
	marketplaceAddr = "0x9999999999999999999999999999999999999999"
	aliceKey        = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	aliceAddr       = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

var mktABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(market.MarketplaceABI))
	if err != nil {
		panic(err)
	}
	return parsed
}()

// marketNode mimics a marketplace chain node: it answers contract reads by
// calldata selector and accepts transaction submissions.
type marketNode struct {
	mu       sync.Mutex
	srv      *httptest.Server
	listings []byte // ABI-encoded getListings() return
	proceeds *big.Int
	rawTxs   []string
}

func newMarketNode(t *testing.T) *marketNode {
	t.Helper()
	n := &marketNode{proceeds: big.NewInt(0)}

	n.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
			ID     int               `json:"id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		reply := func(result interface{}) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
				"jsonrpc": "2.0", "id": req.ID, "result": result,
			})
		}

		n.mu.Lock()
		defer n.mu.Unlock()

		switch req.Method {
		case "eth_chainId":
			reply("0x4ebf")
		case "eth_blockNumber":
			reply("0x100")
		case "eth_gasPrice":
			reply("0x3b9aca00")
		case "eth_estimateGas":
			reply("0x30d40")
		case "eth_getTransactionCount":
			reply("0x0")
		case "eth_call":
			var call struct {
				Data string `json:"data"`
			}
			require.NoError(t, json.Unmarshal(req.Params[0], &call))
			getListingsSel := hex.EncodeToString(mktABI.Methods["getListings"].ID)
			if strings.HasPrefix(strings.TrimPrefix(call.Data, "0x"), getListingsSel) {
				reply("0x" + hex.EncodeToString(n.listings))
				return
			}
			out, err := mktABI.Methods["proceeds"].Outputs.Pack(n.proceeds)
			require.NoError(t, err)
			reply("0x" + hex.EncodeToString(out))
		case "eth_sendRawTransaction":
			var raw string
			require.NoError(t, json.Unmarshal(req.Params[0], &raw))
			n.rawTxs = append(n.rawTxs, raw)
			reply("0x" + strings.Repeat("cd", 32))
		case "eth_getTransactionReceipt":
			reply(map[string]interface{}{
				"transactionHash": "0x" + strings.Repeat("cd", 32),
				"status":          "0x1",
				"blockNumber":     "0x101",
				"gasUsed":         "0x5208",
			})
		default:
			reply(nil)
		}
	}))
	t.Cleanup(n.srv.Close)
	return n
}

type listingTuple struct {
	Id        *big.Int
	Seller    common.Address
	Token     common.Address
	TokenId   *big.Int
	Remaining *big.Int
	Price     *big.Int
	Active    bool
}

func (n *marketNode) setListings(t *testing.T, tuples []listingTuple) {
	t.Helper()
	data, err := mktABI.Methods["getListings"].Outputs.Pack(tuples)
	require.NoError(t, err)
	n.mu.Lock()
	n.listings = data
	n.mu.Unlock()
}

func monadParams(rpcURL string) wallet.ChainParams {
	return wallet.ChainParams{
		ChainID:          "0x4ebf",
		DisplayName:      "Monad Testnet",
		RPCURLs:          []string{rpcURL},
		CurrencyName:     "MON",
		CurrencySymbol:   "MON",
		CurrencyDecimals: 18,
	}
}

// newClient wires the full stack over the mock node: account manager with an
// in-memory keystore, local provider, session manager, binder, client.
func newClient(t *testing.T, node *marketNode) *market.Client {
	t.Helper()

	mgr := wallet.NewManager(wallet.WithKeystore(wallet.NewInMemoryKeystore()))
	_, err := mgr.Import("alice", aliceKey)
	require.NoError(t, err)

	params := monadParams(node.srv.URL)
	provider := wallet.NewLocalProvider(mgr, wallet.WithKnownChain(params))
	sessions := wallet.NewSessionManager(provider, wallet.NewNetworkGuard(params))

	binder := market.NewBinder(marketplaceAddr, node.srv.URL, big.NewInt(0x4ebf),
		func(account string) (market.TxSigner, error) {
			for _, a := range mgr.List() {
				if strings.EqualFold(a.Address, account) {
					return wallet.NewSigner(a, mgr.Keystore()), nil
				}
			}
			return nil, wallet.ErrAccountNotFound
		})

	c := market.NewClient(sessions, binder)
	t.Cleanup(c.Close)
	return c
}

func TestConnectAndBrowse(t *testing.T) {
	node := newMarketNode(t)
	node.setListings(t, []listingTuple{
		{
			Id:        big.NewInt(1),
			Seller:    common.HexToAddress(aliceAddr),
			Token:     common.HexToAddress("0x1111111111111111111111111111111111111111"),
			TokenId:   big.NewInt(42),
			Remaining: big.NewInt(0),
			Price:     big.NewInt(1_000_000),
			Active:    true,
		},
		{
			Id:        big.NewInt(2),
			Seller:    common.HexToAddress(aliceAddr),
			Token:     common.HexToAddress("0x1111111111111111111111111111111111111111"),
			TokenId:   big.NewInt(43),
			Remaining: big.NewInt(0),
			Price:     big.NewInt(500),
			Active:    false,
		},
	})

	c := newClient(t, node)

	s, err := c.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, aliceAddr, s.Account)
	assert.Equal(t, "0x4ebf", s.ChainID)

	listings := c.Store().Listings()
	require.Len(t, listings, 1, "inactive listings are filtered out")
	assert.Equal(t, uint64(1), listings[0].ID)
	assert.False(t, listings[0].QuantityBased())
}

func TestBuyEndToEnd(t *testing.T) {
	node := newMarketNode(t)
	node.setListings(t, []listingTuple{{
		Id:        big.NewInt(7),
		Seller:    common.HexToAddress("0x2222222222222222222222222222222222222222"),
		Token:     common.HexToAddress("0x1111111111111111111111111111111111111111"),
		TokenId:   big.NewInt(5),
		Remaining: big.NewInt(20),
		Price:     big.NewInt(1000),
		Active:    true,
	}})

	c := newClient(t, node)
	_, err := c.Connect(context.Background())
	require.NoError(t, err)

	l, ok := c.Store().Get(7)
	require.True(t, ok)
	require.True(t, l.QuantityBased())

	res, err := c.Coordinator().Buy(context.Background(), l, big.NewInt(3))
	require.NoError(t, err)

	assert.Equal(t, market.KindBuy, res.Kind)
	require.NotNil(t, res.Receipt)
	assert.Equal(t, uint64(1), res.Receipt.Status)
	assert.NoError(t, res.RefreshErr)

	node.mu.Lock()
	defer node.mu.Unlock()
	require.Len(t, node.rawTxs, 1, "exactly one transaction submitted")
}

func TestWithdrawEndToEnd(t *testing.T) {
	node := newMarketNode(t)
	node.setListings(t, nil)
	node.proceeds = big.NewInt(123456)

	c := newClient(t, node)
	_, err := c.Connect(context.Background())
	require.NoError(t, err)

	require.NotNil(t, c.Store().Proceeds())
	assert.Equal(t, int64(123456), c.Store().Proceeds().Int64())

	res, err := c.Coordinator().Withdraw(context.Background())
	require.NoError(t, err)
	assert.Equal(t, market.KindWithdraw, res.Kind)
}

func TestSellEndToEnd(t *testing.T) {
	node := newMarketNode(t)
	node.setListings(t, nil)

	c := newClient(t, node)
	_, err := c.Connect(context.Background())
	require.NoError(t, err)

	res, err := c.Coordinator().CreateListing(context.Background(), market.ListingForm{
		AssetContract: "0x1111111111111111111111111111111111111111",
		AssetID:       "42",
		Quantity:      "100",
		Price:         "0.05",
	})
	require.NoError(t, err)
	assert.Equal(t, market.KindCreateListing, res.Kind)

	node.mu.Lock()
	defer node.mu.Unlock()
	require.Len(t, node.rawTxs, 1)
}
