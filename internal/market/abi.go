package market

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// MarketplaceABI is the deployed marketplace contract's interface. Listings
// come back as one record shape for both asset models: remaining == 0 marks a
// single-unit listing (price is the full price), remaining > 0 marks a
// quantity-based one (price is per unit).
const MarketplaceABI = `[
  {
    "name": "getListings",
    "type": "function",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [
      {
        "name": "",
        "type": "tuple[]",
        "components": [
          {"name": "id", "type": "uint256"},
          {"name": "seller", "type": "address"},
          {"name": "token", "type": "address"},
          {"name": "tokenId", "type": "uint256"},
          {"name": "remaining", "type": "uint256"},
          {"name": "price", "type": "uint256"},
          {"name": "active", "type": "bool"}
        ]
      }
    ]
  },
  {
    "name": "proceeds",
    "type": "function",
    "stateMutability": "view",
    "inputs": [{"name": "seller", "type": "address"}],
    "outputs": [{"name": "", "type": "uint256"}]
  },
  {
    "name": "listToken",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "token", "type": "address"},
      {"name": "tokenId", "type": "uint256"},
      {"name": "price", "type": "uint256"}
    ],
    "outputs": []
  },
  {
    "name": "list1155",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "token", "type": "address"},
      {"name": "tokenId", "type": "uint256"},
      {"name": "amount", "type": "uint256"},
      {"name": "pricePerUnit", "type": "uint256"}
    ],
    "outputs": []
  },
  {
    "name": "buy",
    "type": "function",
    "stateMutability": "payable",
    "inputs": [{"name": "id", "type": "uint256"}],
    "outputs": []
  },
  {
    "name": "buy",
    "type": "function",
    "stateMutability": "payable",
    "inputs": [
      {"name": "id", "type": "uint256"},
      {"name": "amount", "type": "uint256"}
    ],
    "outputs": []
  },
  {
    "name": "withdrawProceeds",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [],
    "outputs": []
  }
]`

// Method keys into mktABI. go-ethereum disambiguates the buy overloads by
// suffixing the second with "0"; the packed selectors stay correct.
const (
	methodGetListings = "getListings"
	methodProceeds    = "proceeds"
	methodListToken   = "listToken"
	methodList1155    = "list1155"
	methodBuySingle   = "buy"
	methodBuyQty      = "buy0"
	methodWithdraw    = "withdrawProceeds"
)

// mktABI is the parsed marketplace ABI, shared by readers and writers.
var mktABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(MarketplaceABI))
	if err != nil {
		panic("market: bad embedded ABI: " + err.Error())
	}
	return parsed
}()
